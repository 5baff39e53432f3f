package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"cdf-insights/internal/dataset"
	"cdf-insights/internal/models"
)

var ErrSourceUnavailable = errors.New("dataset source unavailable, circuit breaker is open")

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type BreakerConfig struct {
	MaxFailures  int
	ResetTimeout time.Duration
	// HalfOpenMaxSucc successful reads close the breaker again
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// BreakerSource wraps a dataset source that reaches an external store. After
// MaxFailures consecutive read errors it fails fast with ErrSourceUnavailable
// until ResetTimeout has passed, then lets reads through on probation.
type BreakerSource struct {
	source dataset.Source
	config BreakerConfig
	now    func() time.Time

	mu                sync.Mutex
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewBreakerSource(source dataset.Source, config BreakerConfig) *BreakerSource {
	return &BreakerSource{
		source: source,
		config: config,
		now:    time.Now,
		state:  BreakerClosed,
	}
}

func (b *BreakerSource) Name() string {
	return b.source.Name()
}

func (b *BreakerSource) Records(ctx context.Context) ([]dataset.RawRecord, error) {
	if err := b.allow(); err != nil {
		return nil, err
	}
	records, err := b.source.Records(ctx)
	b.record(err)
	return records, err
}

func (b *BreakerSource) Provinces(ctx context.Context) ([]models.Province, error) {
	if err := b.allow(); err != nil {
		return nil, err
	}
	provinces, err := b.source.Provinces(ctx)
	b.record(err)
	return provinces, err
}

func (b *BreakerSource) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *BreakerSource) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen {
		if b.now().Sub(b.lastFailureTime) <= b.config.ResetTimeout {
			return ErrSourceUnavailable
		}
		b.state = BreakerHalfOpen
		b.halfOpenSuccesses = 0
	}
	return nil
}

func (b *BreakerSource) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// an empty registry is bad data, not an unreachable store
	if err == nil || errors.Is(err, dataset.ErrEmptyRegistry) {
		switch b.state {
		case BreakerHalfOpen:
			b.halfOpenSuccesses++
			if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
				b.state = BreakerClosed
				b.failures = 0
			}
		case BreakerClosed:
			b.failures = 0
		}
		return
	}

	b.lastFailureTime = b.now()
	switch b.state {
	case BreakerHalfOpen:
		b.state = BreakerOpen
	case BreakerClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = BreakerOpen
		}
	}
}
