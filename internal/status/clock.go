package status

import "time"

// Clock supplies "now". The engine reads it once per call.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
