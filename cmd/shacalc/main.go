// Package main is the shacalc CLI entrypoint.
package main

import (
	"os"

	"shacalc/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run(os.Args[1:]))
}
