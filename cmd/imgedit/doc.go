// Imgedit is a CLI for editing and generating images with the Gemini API.
//
// It reads an image from stdin or a file, sends it to the model together
// with a text prompt or a named template, and writes the resulting image to
// stdout or a file, so invocations compose into shell pipelines.
//
// Usage:
//
//	imgedit edit "remove the background" < in.png > out.png
//	imgedit edit remove-bg -i photo.jpg -o clean.png   # template by name
//	imgedit edit "put the cat on the sofa" -i cat.png -i sofa.png -o combined.png
//	imgedit generate "a lighthouse at dusk" -o lighthouse.png
//	imgedit templates                                  # list prompt templates
//	imgedit config set api-key                         # prompted, not echoed
//
// See https://github.com/imgedit/imgedit for full documentation.
package main
