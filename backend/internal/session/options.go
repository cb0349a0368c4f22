package session

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/history"
)

// Option configures a Session.
type Option func(*Session)

// WithName sets the assistant name and version shown in the banner.
func WithName(name, version string) Option {
	return func(s *Session) {
		s.name = name
		s.version = version
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithPolicy replaces the embedded Cedar response policy.
func WithPolicy(p Policy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithHistorySink mirrors every turn to sink.
func WithHistorySink(sink *history.Sink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}

// WithRand sets the source used to pick greetings.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithClock sets the time source for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithColor forces terminal colors on or off.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.color = &enabled
	}
}
