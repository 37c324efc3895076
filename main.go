package main

import (
	"os"

	"github.com/4lbatr0s/sitemeta/cli"
	"github.com/4lbatr0s/sitemeta/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.LoadLogging()

	if err := cli.Run(os.Args[1:], os.Stdout); err != nil {
		log.Logger.Fatal().Err(err).Msg("sitemeta failed")
	}
}
