// Package session owns one conversation: it runs each query through
// classifier, scorer, policy and responder, and records the turn.
package session

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/analyzer"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/cedar"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/dataset"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/history"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/metrics"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/responder"
	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/scorer"
)

// Policy decides which obligations decorate a reply.
type Policy interface {
	Evaluate(f cedar.Facts) cedar.EvaluationResult
}

// Session is a single conversation over a shared, read-only dataset.
type Session struct {
	ID string

	name    string
	version string

	dataset    *dataset.Dataset
	classifier *analyzer.Classifier
	responder  *responder.Responder
	policy     Policy
	history    *history.Log
	sink       *history.Sink
	logger     *zap.Logger
	rng        *rand.Rand
	now        func() time.Time

	color     *bool
	botColor  *color.Color
	userColor *color.Color
	headColor *color.Color
}

// New creates a session. The dataset may be shared between sessions.
func New(ds *dataset.Dataset, opts ...Option) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		name:       "CryptoBuddy",
		version:    "1.0",
		dataset:    ds,
		classifier: analyzer.NewClassifier(ds),
		responder:  responder.New(ds),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.With(zap.String("session_id", s.ID))
	if s.policy == nil {
		s.policy = cedar.NewDefaultEngine(s.logger)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	s.history = history.NewLog(s.ID, s.sink).WithClock(s.now)

	s.botColor = color.New(color.FgCyan, color.Bold)
	s.userColor = color.New(color.FgBlue, color.Bold)
	s.headColor = color.New(color.FgYellow)
	if s.color != nil {
		for _, c := range []*color.Color{s.botColor, s.userColor, s.headColor} {
			if *s.color {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}

	return s
}

// Greet returns a randomly chosen opening line.
func (s *Session) Greet() string {
	return responder.Greetings[s.rng.IntN(len(responder.Greetings))]
}

// History returns the turns recorded so far.
func (s *Session) History() []history.Turn {
	return s.history.Turns()
}

// Handle processes one line of user input. Blank input yields an empty
// reply. done is true when the input asked to end the session.
func (s *Session) Handle(input string) (reply string, done bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	switch strings.ToLower(trimmed) {
	case "quit", "exit", "bye":
		return responder.Farewell(), true
	case "help":
		return responder.Help(), false
	case "disclaimer":
		return responder.Disclaimer(), false
	}

	return s.Respond(trimmed), false
}

// Respond answers a free-text query. It never fails: an unexpected
// fault is logged and turned into an apology.
func (s *Session) Respond(query string) (reply string) {
	start := time.Now()
	defer metrics.ObserveLatency(start)

	defer func() {
		if r := recover(); r != nil {
			metrics.RecordFault()
			s.logger.Error("query processing failed",
				zap.String("query", query),
				zap.Any("panic", r))
			reply = responder.Apology(r)
		}
	}()

	intent := s.classifier.Classify(query)
	mentions := intent.MentionNames()

	s.history.Append(query, intent.Kind.String(), mentions)
	metrics.RecordQuery(intent.Kind.String(), mentions)

	answer := s.Resolve(intent)

	s.logger.Debug("query answered",
		zap.String("intent", intent.Kind.String()),
		zap.Strings("mentions", mentions),
		zap.Strings("obligations", answer.Obligations))

	return s.responder.Render(answer)
}

// Resolve ranks the dataset when the intent needs it and attaches
// policy obligations.
func (s *Session) Resolve(intent analyzer.Intent) responder.Answer {
	answer := responder.Answer{Intent: intent}

	if intent.Kind.NeedsRanking() {
		pick := s.rank(intent.Kind)
		answer.Pick = &pick
	}

	facts := cedar.Facts{SessionID: s.ID, Intent: intent.Kind.String()}
	if subject := subjectOf(answer); subject != nil {
		facts.Asset = subject.Name
		facts.EnergyUse = subject.EnergyUse.String()
		facts.Sustainability = subject.SustainabilityScore
	}

	result := s.policy.Evaluate(facts)
	answer.Obligations = result.Obligations
	for _, o := range result.Obligations {
		metrics.RecordObligation(o)
	}

	return answer
}

func (s *Session) rank(kind analyzer.Kind) scorer.ScoredCandidate {
	switch kind {
	case analyzer.KindMostSustainable:
		return scorer.MostSustainable(s.dataset)
	case analyzer.KindMostProfitable:
		return scorer.MostProfitable(s.dataset)
	default:
		return scorer.BestBalanced(s.dataset)
	}
}

// subjectOf returns the single asset a reply is about, if any.
func subjectOf(a responder.Answer) *dataset.AssetRecord {
	if a.Intent.Asset != nil {
		return a.Intent.Asset
	}
	if a.Pick != nil {
		return &a.Pick.Asset
	}
	return nil
}
