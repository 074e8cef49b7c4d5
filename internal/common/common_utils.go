package common

import (
	"fmt"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// NormalizeCPF strips everything that is not a digit, so
// "123.456.789-01" and "12345678901" resolve identically.
func NormalizeCPF(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitRestrictions turns the stored comma-separated restriction list into
// a slice, dropping empty segments.
func SplitRestrictions(stored *string) []string {
	if stored == nil || *stored == "" {
		return nil
	}
	parts := strings.Split(*stored, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
