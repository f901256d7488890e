package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Linux configuration examples
// PORT=8080 HOST=127.0.0.1 ./osm-mcp-wrapper
// ./osm-mcp-wrapper --port 8080 --host 127.0.0.1

func main() {
	setupZerolog()
	Execute()
}

func setupZerolog() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()
}
