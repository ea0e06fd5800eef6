package countdown

import "time"

// Ticker delivers ticks until it is stopped.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Clock creates tickers. It exists so that tests can drive the engine
// without waiting on the wall clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realClock struct{}

type realTicker struct {
	*time.Ticker
}

func (t realTicker) Chan() <-chan time.Time {
	return t.C
}

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

// SystemClock ticks on the wall clock.
var SystemClock Clock = realClock{}
