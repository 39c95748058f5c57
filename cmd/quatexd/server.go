package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/op/go-logging.v1"

	"quatex/internal/config"
	"quatex/internal/protocol/conjugation"
	"quatex/internal/quaternion"
	"quatex/internal/services/session"
	"quatex/internal/services/survey"
)

const (
	maxBodyBytes = 4 << 10
	mimeCBOR     = "application/cbor"
	mimeJSON     = "application/json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type simulateRequest struct {
	Modulus int64  `json:"modulus"`
	Seed    string `json:"seed"`
}

type surveyRequest struct {
	Modulus int64  `json:"modulus"`
	Trials  int    `json:"trials"`
	Seed    string `json:"seed"`
}

type server struct {
	settings *config.Config
	survey   *survey.Service
	log      *logging.Logger
	requests *prometheus.CounterVec
	mux      *http.ServeMux
}

// newServer builds the quatexd handler. Metrics are registered on reg and
// served from the configured metrics path.
func newServer(settings *config.Config, log *logging.Logger, reg *prometheus.Registry) *server {
	s := &server{
		settings: settings,
		survey:   survey.New(settings.Simulation.SurveyWorkers, settings.Simulation.MaxAttempts, survey.NewMetrics(reg), log),
		log:      log,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quatexd_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(s.requests)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /simulate", s.count("simulate", s.handleSimulate))
	mux.HandleFunc("POST /survey", s.count("survey", s.handleSurvey))
	mux.HandleFunc("GET /healthz", s.count("healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}))
	mux.Handle("GET "+settings.Server.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	s.mux = mux
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *server) count(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		h(sw, r)
		s.requests.WithLabelValues(route, strconv.Itoa(sw.code)).Inc()
	}
}

func (s *server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Modulus == 0 {
		req.Modulus = s.settings.Simulation.Modulus
	}
	res, err := session.Simulate(req.Modulus, req.Seed, s.settings.Simulation.MaxAttempts)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.log.Debugf("simulate mod %d seed %s agree=%v", req.Modulus, res.Seed, res.Outcome.Agree)
	s.respond(w, r, res)
}

func (s *server) handleSurvey(w http.ResponseWriter, r *http.Request) {
	var req surveyRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Modulus == 0 {
		req.Modulus = s.settings.Simulation.Modulus
	}
	if req.Trials > s.settings.Server.MaxTrials {
		http.Error(w, "trials exceeds server limit of "+strconv.Itoa(s.settings.Server.MaxTrials), http.StatusBadRequest)
		return
	}
	rep, err := s.survey.Survey(r.Context(), req.Modulus, req.Trials, req.Seed)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, r, rep)
}

func (s *server) decode(w http.ResponseWriter, r *http.Request, out any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// fail maps input errors to 400 and everything else to 500. A modulus with
// too few invertible elements exhausts the draw bound, so that is the
// caller's input too.
func (s *server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quaternion.ErrInvalidModulus),
		errors.Is(err, quaternion.ErrInvalidSeed),
		errors.Is(err, conjugation.ErrAttemptsExhausted),
		errors.Is(err, survey.ErrInvalidTrials):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.log.Errorf("request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *server) respond(w http.ResponseWriter, r *http.Request, v any) {
	var (
		body []byte
		err  error
		mime = mimeJSON
	)
	if r.Header.Get("Accept") == mimeCBOR {
		mime = mimeCBOR
		body, err = cbor.Marshal(v)
	} else {
		body, err = json.Marshal(v)
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", mime)
	_, _ = w.Write(body)
}
