package handler

import (
	"net/http"
	"time"

	"github.com/consigtech/proposal-tracker-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.L.WithError(err).Warn("erro ao responder o healthcheck")
		}
	})
}
