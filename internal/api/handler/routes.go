package handler

import (
	"net/http"

	"github.com/consigtech/proposal-tracker-api/internal/api/handler/router"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/authenticating"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/dashboarding"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/goaling"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/proposing"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/ranking"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/reporting"
	"github.com/consigtech/proposal-tracker-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/password-reset",
			Method:  http.MethodPost,
			Handler: ResetPassword(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Proposals(service proposing.Proposer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/proposals",
			Method:      http.MethodPost,
			Handler:     CreateProposal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/proposals/:id",
			Method:      http.MethodGet,
			Handler:     GetProposal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/proposals/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProposal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/proposals/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProposal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/proposals",
			Method:      http.MethodGet,
			Handler:     GetReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/proposals/export",
			Method:      http.MethodGet,
			Handler:     ExportReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sources/overview",
			Method:      http.MethodGet,
			Handler:     GetSourcesOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/panel",
			Method:      http.MethodGet,
			Handler:     GetPanel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Ranking(service ranking.Ranker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking",
			Method:      http.MethodGet,
			Handler:     GetRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/daily-index",
			Method:      http.MethodGet,
			Handler:     GetDailyIndex(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Goals(service goaling.GoalManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals",
			Method:      http.MethodGet,
			Handler:     GetGoals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/goals/global",
			Method:      http.MethodPut,
			Handler:     SetGlobalGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/goals/daily",
			Method:      http.MethodPut,
			Handler:     SetDailyGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/goals/consultants",
			Method:      http.MethodPut,
			Handler:     SetConsultantGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
