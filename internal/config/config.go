package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Bootstrap Bootstrap `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database seleciona o backend uma única vez: DATABASE_URL preenchida
// implica o servidor PostgreSQL; vazia implica o arquivo SQLite local.
type Database struct {
	URL        string `mapstructure:"database_url"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

func (d Database) UsePostgres() bool {
	return d.URL != ""
}

type Auth struct {
	SecretKey string `mapstructure:"secret_key"`
}

// Bootstrap define a credencial semeada do admin inicial. Deve ser trocada
// antes de expor o sistema: preocupação operacional, não contrato de design.
type Bootstrap struct {
	AdminName     string `mapstructure:"bootstrap_admin_name"`
	AdminPassword string `mapstructure:"bootstrap_admin_password"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "local.db")

	viper.SetDefault("SECRET_KEY", "consigtech_secret_2025")

	viper.SetDefault("BOOTSTRAP_ADMIN_NAME", "admin")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "Tech@2025")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações usuais antes do viper.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
