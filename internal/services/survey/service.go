package survey

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"gopkg.in/op/go-logging.v1"

	"quatex/internal/domain"
	"quatex/internal/protocol/conjugation"
	"quatex/internal/quaternion"
)

// MaxTrials bounds a single survey.
const MaxTrials = 1 << 20

// ErrInvalidTrials is returned for a trial count outside [1, MaxTrials].
var ErrInvalidTrials = errors.New("survey: trial count out of range")

// Service runs surveys on a bounded worker pool.
type Service struct {
	workers     int
	maxAttempts int
	metrics     *Metrics
	log         *logging.Logger
}

// New constructs a survey Service. metrics may be nil.
func New(workers, maxAttempts int, metrics *Metrics, log *logging.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Service{
		workers:     workers,
		maxAttempts: maxAttempts,
		metrics:     metrics,
		log:         log,
	}
}

type trial struct {
	index int
	out   *tally
	wg    *sync.WaitGroup
}

type tally struct {
	sync.Mutex
	agree, disagree, failed int
}

// Survey runs trials independent full sessions in Z/modulus Z. An empty
// seedHex draws a fresh survey seed, reported back for replay. A cancelled
// ctx stops scheduling new trials and returns ctx.Err().
func (s *Service) Survey(ctx context.Context, modulus int64, trials int, seedHex string) (domain.SurveyReport, error) {
	if trials < 1 || trials > MaxTrials {
		return domain.SurveyReport{}, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}
	ring, err := quaternion.NewRing(modulus)
	if err != nil {
		return domain.SurveyReport{}, err
	}
	root, err := quaternion.NewSamplerFromHex(seedHex)
	if err != nil {
		return domain.SurveyReport{}, err
	}
	seed := root.Seed()

	res := new(tally)
	pool, err := ants.NewPoolWithFunc(s.workers, func(arg any) {
		t := arg.(*trial)
		defer t.wg.Done()

		outcome := s.runTrial(ring, seed, t.index)
		s.metrics.observe(outcome)

		t.out.Lock()
		defer t.out.Unlock()
		switch outcome {
		case outcomeAgree:
			t.out.agree++
		case outcomeDisagree:
			t.out.disagree++
		default:
			t.out.failed++
		}
	})
	if err != nil {
		return domain.SurveyReport{}, fmt.Errorf("survey pool: %w", err)
	}
	defer pool.Release()

	s.log.Infof("survey: %d trials mod %d on %d workers (seed %s)", trials, modulus, s.workers, root.SeedHex())

	var wg sync.WaitGroup
	for i := 0; i < trials; i++ {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		if err := pool.Invoke(&trial{index: i, out: res, wg: &wg}); err != nil {
			wg.Done()
			wg.Wait()
			return domain.SurveyReport{}, fmt.Errorf("survey pool: %w", err)
		}
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return domain.SurveyReport{}, err
	}
	s.metrics.trials.Observe(float64(trials))

	report := domain.SurveyReport{
		Modulus:       modulus,
		Trials:        trials,
		Agreements:    res.agree,
		Disagreements: res.disagree,
		Failures:      res.failed,
		Seed:          root.SeedHex(),
	}
	s.log.Noticef("survey: %d/%d sessions agreed", report.Agreements, trials)
	return report, nil
}

func (s *Service) runTrial(ring quaternion.Ring, seed []byte, index int) string {
	_, out, err := conjugation.Run(ring, quaternion.NewSeededSampler(TrialSeed(seed, index)), s.maxAttempts)
	switch {
	case err != nil:
		s.log.Debugf("survey: trial %d: %v", index, err)
		return outcomeFailed
	case out.Agree:
		return outcomeAgree
	default:
		return outcomeDisagree
	}
}

// TrialSeed derives the sampler seed of one trial from the survey seed.
func TrialSeed(seed []byte, index int) []byte {
	h := sha256.New()
	h.Write([]byte("quatex-survey-trial"))
	h.Write(seed)
	h.Write(binary.BigEndian.AppendUint64(nil, uint64(index)))
	return h.Sum(nil)[:quaternion.SeedBytes]
}

// Compile-time assertion that Service implements domain.SurveyService.
var _ domain.SurveyService = (*Service)(nil)
