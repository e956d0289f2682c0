package schedule

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/san-kum/shapeshift/internal/morph"
	"github.com/san-kum/shapeshift/internal/shapes"
	"go.uber.org/zap"
)

const DefaultInterval = 4000 * time.Millisecond

var (
	ErrInvalidInterval = errors.New("schedule: interval must be positive")
	ErrStopped         = errors.New("schedule: scheduler stopped")
)

type Config struct {
	Interval time.Duration
}

func DefaultConfig() Config {
	return Config{Interval: DefaultInterval}
}

// Target is the part of a morph engine the scheduler drives. The scheduler
// passes a nil snapshot so the target starts from its own visible buffer.
type Target interface {
	Active() int
	Shapes() int
	BeginTransition(index int, snapshot shapes.PointCloud) error
}

type Scheduler struct {
	mu      sync.Mutex
	target  Target
	rng     *rand.Rand
	log     *zap.Logger
	cron    *cron.Cron
	started bool
	stopped bool
	changes int
}

func New(cfg Config, target Target, rng *rand.Rand, log *zap.Logger) (*Scheduler, error) {
	if cfg.Interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scheduler{target: target, rng: rng, log: log}

	clog := cronLogger{log.Sugar()}
	s.cron = cron.New(cron.WithChain(cron.Recover(clog), cron.SkipIfStillRunning(clog)), cron.WithLogger(clog))
	s.cron.Schedule(every(cfg.Interval), cron.FuncJob(s.Tick))
	return s, nil
}

// Step picks the next shape and starts the transition towards it. It returns
// the chosen index. With fewer than two shapes it returns the active index and
// starts nothing.
func (s *Scheduler) Step() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0, ErrStopped
	}
	cur := s.target.Active()
	n := s.target.Shapes()
	if n < 2 {
		return cur, nil
	}

	next := Pick(s.rng, n, cur)
	if err := s.target.BeginTransition(next, nil); err != nil {
		return cur, err
	}
	s.changes++
	s.log.Debug("shape change", zap.Int("from", cur), zap.Int("to", next), zap.Int("changes", s.changes))
	return next, nil
}

// Tick runs Step and absorbs its errors so a failing transition never
// reaches the timer or frame loop.
func (s *Scheduler) Tick() {
	_, err := s.Step()
	switch {
	case err == nil, errors.Is(err, ErrStopped), errors.Is(err, morph.ErrClosed):
	default:
		s.log.Warn("shape change failed", zap.Error(err))
	}
}

// Start begins ticking every interval. It is a no-op once started or stopped.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	s.cron.Start()
}

// Stop cancels the timer and waits for a running tick to return. Ticks and
// Steps after Stop do nothing. Stop is idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	<-s.cron.Stop().Done()
}

// Changes returns how many transitions the scheduler has started.
func (s *Scheduler) Changes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changes
}

// every is a fixed-delay cron schedule. cron.Every rounds to whole seconds,
// this keeps millisecond intervals.
type every time.Duration

func (e every) Next(t time.Time) time.Time {
	return t.Add(time.Duration(e))
}

// cronLogger routes cron's internal logs into zap.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
