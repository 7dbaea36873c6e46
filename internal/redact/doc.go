// Package redact keeps the API key out of user-facing output.
//
// Config display masks the stored key down to its last four characters,
// and error text passed through [Scrub] has any embedded key replaced with
// [REDACTED] before it is printed.
package redact
