package app

import (
	"net/http"

	"quatex/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string         // data directory, e.g. $HOME/.quatex
	Settings *config.Config // parsed configuration; nil uses config.Default()
	HTTP     *http.Client   // optional; defaults to a client with the assistant timeout
}
