package mocklogger

import (
	"context"
	"log/slog"
	"sync"
)

// MockHandler records log calls instead of writing them anywhere.
type MockHandler struct {
	mu             sync.Mutex
	LoggedMessages []string
	LoggedLevels   []slog.Level
}

// Enabled implements slog.Handler.
func (h *MockHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *MockHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LoggedMessages = append(h.LoggedMessages, r.Message)
	h.LoggedLevels = append(h.LoggedLevels, r.Level)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *MockHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler.
func (h *MockHandler) WithGroup(_ string) slog.Handler {
	return h
}

// NewMockLogger creates a logger backed by a MockHandler.
func NewMockLogger() *slog.Logger {
	return slog.New(&MockHandler{
		LoggedMessages: []string{},
		LoggedLevels:   []slog.Level{},
	})
}
