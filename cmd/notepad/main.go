package main

import (
	"github.com/rs/zerolog/log"

	"notepad/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("application initialization failed")
	}

	if err := application.Run(); err != nil {
		log.Fatal().Err(err).Msg("application execution failed")
	}
}
