// Package imageio moves image bytes between files, standard streams, and
// the provider, with MIME sniffing from magic bytes and best-effort format
// conversion through the stdlib codecs.
package imageio
