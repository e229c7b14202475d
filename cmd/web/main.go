package main

import (
	"freelancehub_backend/internal/app"
	"freelancehub_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
