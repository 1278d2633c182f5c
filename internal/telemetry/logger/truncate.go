package logger

import (
	"log/slog"
	"strconv"
)

// DefaultMaxValueLen bounds string attributes. Keys and values logged at
// debug level are client data and can be arbitrarily large.
const DefaultMaxValueLen = 256

func truncateAttr(a slog.Attr, maxLen int) slog.Attr {
	if a.Key == slog.MessageKey || a.Value.Kind() != slog.KindString {
		return a
	}
	if s := a.Value.String(); maxLen > 0 && len(s) > maxLen {
		return slog.String(a.Key, Truncate(s, maxLen))
	}
	return a
}

// Truncate shortens s to maxLen bytes and notes how many were dropped.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "...(" + strconv.Itoa(len(s)-maxLen) + " more bytes)"
}
