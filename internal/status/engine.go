// Package status derives urgency statuses for household tasks and rolls them
// up into area and room statuses.
//
// Everything here is a pure function of its input plus a single reading of
// the configured Clock per call. An Engine is immutable after construction
// and safe for concurrent use.
package status

import (
	"fmt"
	"time"
)

// Engine classifies tasks and aggregates areas and rooms.
type Engine struct {
	task  TaskThresholds
	agg   AggregateThresholds
	clock Clock
}

// Option configures an Engine.
type Option func(*Engine)

func WithTaskThresholds(t TaskThresholds) Option {
	return func(e *Engine) { e.task = t }
}

func WithAggregateThresholds(a AggregateThresholds) Option {
	return func(e *Engine) { e.agg = a }
}

func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// NewEngine builds an Engine from the defaults plus opts. Threshold tables
// are validated here so that classification itself never fails.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		task:  DefaultTaskThresholds(),
		agg:   DefaultAggregateThresholds(),
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.task.Validate(); err != nil {
		return nil, fmt.Errorf("configuring status engine: %w", err)
	}
	if err := e.agg.Validate(); err != nil {
		return nil, fmt.Errorf("configuring status engine: %w", err)
	}
	return e, nil
}

// Default returns an Engine with the default thresholds and the system clock.
func Default() *Engine {
	return &Engine{
		task:  DefaultTaskThresholds(),
		agg:   DefaultAggregateThresholds(),
		clock: SystemClock{},
	}
}

// Now reads the engine's clock.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

func (e *Engine) TaskThresholds() TaskThresholds { return e.task }

func (e *Engine) AggregateThresholds() AggregateThresholds { return e.agg }
