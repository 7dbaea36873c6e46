// Package providers implements the ImageProvider interface for the
// supported generative-image backends.
//
// Gemini is currently the only provider, built on the official
// google.golang.org/genai SDK. Rate-limited requests retry with exponential
// back-off; auth errors never retry and are detectable via [IsAuthError].
// All other provider errors surface unchanged.
//
// Use [New] to obtain an ImageProvider by provider name.
package providers
