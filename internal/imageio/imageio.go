package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// MIME types for the image formats imgedit understands.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEGIF  = "image/gif"
	MIMEWebP = "image/webp"
)

// sniff identifies an image MIME type from magic bytes. ok is false when
// the content is not a recognizable image.
func sniff(data []byte) (string, bool) {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return MIMEPNG, true
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xff, 0xd8, 0xff}):
		return MIMEJPEG, true
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return MIMEWebP, true
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return MIMEGIF, true
	}
	if ct := http.DetectContentType(data); strings.HasPrefix(ct, "image/") {
		return ct, true
	}
	return "", false
}

// DetectMIME sniffs an image MIME type from magic bytes. Unknown content
// defaults to image/png, which is what the Gemini API returns when it omits
// a MIME type.
func DetectMIME(data []byte) string {
	if mime, ok := sniff(data); ok {
		return mime
	}
	return MIMEPNG
}

// MIMEFromName maps a format name or file extension (with or without the
// leading dot) to a MIME type.
func MIMEFromName(name string) (string, bool) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return MIMEPNG, true
	case "jpg", "jpeg":
		return MIMEJPEG, true
	case "gif":
		return MIMEGIF, true
	case "webp":
		return MIMEWebP, true
	default:
		return "", false
	}
}

// ReadFile reads image bytes from a file and sniffs the MIME type, falling
// back to the file extension when the content is unrecognized.
func ReadFile(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading input image: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("input file is empty: %s", path)
	}
	mime, ok := sniff(data)
	if !ok {
		if mime, ok = MIMEFromName(filepath.Ext(path)); !ok {
			mime = MIMEPNG
		}
	}
	return data, mime, nil
}

// StdinIsPiped reports whether standard input has piped data rather than a
// terminal attached.
func StdinIsPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadStdin reads image bytes from standard input. It fails when stdin is a
// terminal (nothing piped) or delivers no data.
func ReadStdin() ([]byte, string, error) {
	if !StdinIsPiped() {
		return nil, "", fmt.Errorf("no input provided: use -i/--input for a file or pipe an image via stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("no data received from stdin")
	}
	return data, DetectMIME(data), nil
}

// WriteOutput writes image bytes to a file, creating parent directories as
// needed, or to standard output when path is empty.
func WriteOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Convert re-encodes image bytes to the target MIME type. Bytes already in
// the target format, or targets without a stdlib encoder (webp), pass
// through unchanged. Undecodable input also passes through: the transfer is
// opaque byte plumbing first, conversion second.
func Convert(data []byte, targetMIME string) ([]byte, error) {
	if targetMIME == "" || DetectMIME(data) == targetMIME {
		return data, nil
	}

	var encode func(io.Writer, image.Image) error
	switch targetMIME {
	case MIMEPNG:
		encode = png.Encode
	case MIMEJPEG:
		encode = func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}
	case MIMEGIF:
		encode = func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}
	default:
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, nil
	}
	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding %s output: %w", targetMIME, err)
	}
	return buf.Bytes(), nil
}
