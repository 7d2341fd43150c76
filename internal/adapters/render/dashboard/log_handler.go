package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg carries a diagnostic record to the status bar.
type logRecordMsg struct {
	summary string
	level   slog.Level
}

// logRecordFadeMsg clears a log line from the status bar. seq ties it to
// the record that scheduled it, so a newer record is not cleared early.
type logRecordFadeMsg struct {
	seq int
}

const logRecordFadeDelay = 5 * time.Second

// LogHandler is a slog.Handler that shows records at or above its level
// in the dashboard status bar instead of writing to the terminal, which
// would tear the alternate screen. It shares the program pointer of the
// Sink it was created from.
type LogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	// parts holds attrs from WithAttrs, already qualified by the groups
	// that were open when they were added.
	parts  []string
	groups []string
}

func (s *Sink) LogHandler(level slog.Level) *LogHandler {
	return &LogHandler{level: level, program: s.program}
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := h.program.Load()
	if program == nil {
		return nil
	}

	prefix := h.prefix()
	parts := make([]string, 0, len(h.parts)+record.NumAttrs())
	parts = append(parts, h.parts...)
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr(prefix, attr))
		return true
	})

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}

	program.Send(logRecordMsg{summary: summary, level: record.Level})
	return nil
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := h.prefix()
	derived := *h
	derived.parts = append([]string(nil), h.parts...)
	for _, attr := range attrs {
		derived.parts = append(derived.parts, formatAttr(prefix, attr))
	}
	return &derived
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	derived := *h
	derived.groups = append(append([]string(nil), h.groups...), name)
	return &derived
}

func (h *LogHandler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func formatAttr(prefix string, attr slog.Attr) string {
	return fmt.Sprintf("%s%s=%s", prefix, attr.Key, attr.Value)
}
