// Command sha3sum prints or checks SHA3 and raw Keccak digests of files.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := Cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("sha3sum failed")
		os.Exit(1)
	}
}
