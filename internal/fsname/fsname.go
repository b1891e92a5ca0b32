// Package fsname turns free-form run and step names into file names.
package fsname

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	maxStem     = 60
	stampLayout = "2006-01-02_15-04-05"
)

// Stem keeps ASCII letters, digits, '-' and '_' and replaces everything else
// with '_'. The result is at most 60 bytes; an empty result becomes fallback.
func Stem(name, fallback string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	s = strings.Trim(s, "_")
	if s == "" {
		return fallback
	}
	if len(s) > maxStem {
		s = s[:maxStem]
	}
	return s
}

// Timestamped returns dir/<timestamp>_<stem>, without an extension.
func Timestamped(dir, name, fallback string, now time.Time) string {
	return filepath.Join(dir, now.Format(stampLayout)+"_"+Stem(name, fallback))
}
