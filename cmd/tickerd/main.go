package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/config"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	configPath := flag.String("config", "", "path to config.json (defaults to ./config.json)")
	flag.Parse()

	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "ledmatrix-live-stats",
		Version: appVersion,
	})
	cfg := config.Load(*configPath, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
