package main

import (
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/docs"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/routes"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/config"
)

// @title           Maestro Ya API
// @version         1.0
// @description     Field service management backend (service requests, quotations, technicians and payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)

	routes.Run(cfg)
}

func setupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
