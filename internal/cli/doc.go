// Package cli wires the cobra command tree for the imgedit binary.
//
// Commands never call os.Exit directly; handlers record a process exit code
// that Run returns to main. Errors that cobra reports itself (bad flags,
// missing arguments, unknown configuration keys) exit 2; authentication
// failures exit 3; everything else that goes wrong at runtime exits 4.
//
// Image bytes go to stdout, everything human-readable goes to stderr, so
// `imgedit edit ... | imgedit edit ...` pipelines stay clean.
package cli
