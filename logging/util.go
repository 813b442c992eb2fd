package logging

import (
	"log/slog"
	"strings"
)

// LevelFromString maps "DEBUG", "INFO", "WARN" or "ERROR" to a slog level.
// Missing or unknown values fall back to INFO.
func LevelFromString(str *string) slog.Level {
	if str == nil {
		return slog.LevelInfo
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(*str))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// FormatAttrs renders record attributes as "key=value; key=value", escaping the separators.
func FormatAttrs(r slog.Record) string {
	var b strings.Builder
	r.Attrs(func(a slog.Attr) bool {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(a.Key)
		b.WriteString("=")
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(a.Value.String(), "=", "\\="), ";", "\\;"))
		return true
	})
	return b.String()
}
