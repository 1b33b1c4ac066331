package main

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/jomatheusdev/bd-poo-biblioteca/app"
	"github.com/jomatheusdev/bd-poo-biblioteca/config"
)

func main() {
	// .env is optional: containers inject the environment directly.
	_ = godotenv.Load()

	cfg := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
