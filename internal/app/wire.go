package app

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"quatex/internal/assistant"
	"quatex/internal/config"
	"quatex/internal/domain"
	"quatex/internal/log"
	sessionsvc "quatex/internal/services/session"
	surveysvc "quatex/internal/services/survey"
	tutorsvc "quatex/internal/services/tutor"
	"quatex/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Settings  *config.Config
	Log       *log.Backend
	Sessions  domain.SessionService
	Survey    domain.SurveyService
	Tutor     domain.TutorService
	Assistant domain.Assistant
	HTTP      *http.Client

	transcripts *store.TranscriptBoltStore
}

// NewWire constructs the dependency graph from cfg. reg receives the survey
// metrics; nil leaves them unregistered.
func NewWire(cfg Config, reg prometheus.Registerer) (*Wire, error) {
	settings := cfg.Settings
	if settings == nil {
		settings = config.Default()
	}

	backend, err := log.New(settings.Logging.File, settings.Logging.Level, settings.Logging.Disable)
	if err != nil {
		return nil, err
	}

	// Stores
	sessionStore := store.NewSessionFileStore(cfg.Home)
	transcriptStore, err := store.OpenTranscriptBoltStore(cfg.Home)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: settings.Assistant.Timeout}
	}

	// Assistant client (uses provided HTTP client)
	ac := assistant.New(
		settings.Assistant.Endpoint,
		settings.Assistant.Model,
		settings.Assistant.APIKey(),
		httpClient,
		backend.GetLogger("assistant"),
	)

	// High-level services
	sessionSvc := sessionsvc.New(sessionStore, transcriptStore, backend.GetLogger("session"), settings.Simulation.MaxAttempts)
	surveySvc := surveysvc.New(
		settings.Simulation.SurveyWorkers,
		settings.Simulation.MaxAttempts,
		surveysvc.NewMetrics(reg),
		backend.GetLogger("survey"),
	)
	tutorSvc := tutorsvc.New(sessionSvc, transcriptStore, ac, backend.GetLogger("tutor"))

	return &Wire{
		Settings:    settings,
		Log:         backend,
		Sessions:    sessionSvc,
		Survey:      surveySvc,
		Tutor:       tutorSvc,
		Assistant:   ac,
		HTTP:        httpClient,
		transcripts: transcriptStore,
	}, nil
}

// Close releases the transcript database and the log file.
func (w *Wire) Close() error {
	return errors.Join(w.transcripts.Close(), w.Log.Close())
}
