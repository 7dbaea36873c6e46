package redact

import "strings"

const placeholder = "[REDACTED]"

// Mask returns a display-safe form of a secret: the last four characters
// behind a fixed prefix. Secrets too short to keep a visible tail are fully
// masked.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

// Scrub removes every occurrence of the secret from a message. Provider and
// transport errors may echo request details; scrub them before they reach
// the terminal or a shell history.
func Scrub(msg, secret string) string {
	if secret == "" {
		return msg
	}
	return strings.ReplaceAll(msg, secret, placeholder)
}
