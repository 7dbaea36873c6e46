package main

import (
	"os"

	"github.com/imgedit/imgedit/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	os.Exit(cli.Run())
}
