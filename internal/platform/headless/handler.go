package headless

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/smashbing/internal/smashbing"
)

// EffectHandler executes effects on behalf of a host.
type EffectHandler interface {
	HandleEffect(tick int, e smashbing.Effect)
}

// EffectHandlerFunc adapts a function to EffectHandler.
type EffectHandlerFunc func(tick int, e smashbing.Effect)

// HandleEffect calls f(tick, e).
func (f EffectHandlerFunc) HandleEffect(tick int, e smashbing.Effect) {
	f(tick, e)
}

// LogHandler "plays" effects by logging them and counting each kind.
type LogHandler struct {
	logger *log.Logger
	counts map[string]int
}

// NewLogHandler creates a handler that logs at debug level.
func NewLogHandler(logger *log.Logger) *LogHandler {
	return &LogHandler{
		logger: logger,
		counts: make(map[string]int),
	}
}

// HandleEffect logs and counts the effect.
func (h *LogHandler) HandleEffect(tick int, e smashbing.Effect) {
	h.counts[e.String()]++
	switch e.Kind {
	case smashbing.EffectSound:
		h.logger.Debug("play sound", "tick", tick, "sound", e.Sound)
	case smashbing.EffectExit:
		h.logger.Info("exit requested", "tick", tick)
	}
}

// Count returns how many times an effect was handled.
func (h *LogHandler) Count(e smashbing.Effect) int {
	return h.counts[e.String()]
}
