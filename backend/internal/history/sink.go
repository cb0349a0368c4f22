package history

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Sink writes turns as JSON lines
type Sink struct {
	mu      sync.Mutex
	closer  io.Closer
	encoder *json.Encoder
	logger  *zap.Logger
}

// NewFileSink appends turns to filePath, creating it if needed.
func NewFileSink(filePath string, logger *zap.Logger) (*Sink, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	s := NewWriterSink(file, logger)
	s.closer = file
	return s, nil
}

// NewWriterSink writes turns to w. Close does not close w.
func NewWriterSink(w io.Writer, logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{
		encoder: json.NewEncoder(w),
		logger:  logger.Named("history"),
	}
}

// Write encodes one turn. Failures are logged and dropped.
func (s *Sink) Write(turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.encoder.Encode(turn); err != nil {
		s.logger.Warn("failed to write history entry",
			zap.String("turn_id", turn.ID),
			zap.Error(err))
	}
}

// Close closes the underlying file, if the sink opened one.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
