package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jaychenthinkfast/OneTabCloud/internal/client"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	setBuildInfoDefaults()

	app := client.NewApp(
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		client.OpenRuntime,
		os.Args[1:],
	)

	os.Exit(run(app, os.Stderr))
}

// run executes app and returns the process exit code.
func run(app client.Client, stderr io.Writer) int {
	if err := app.Run(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func setBuildInfoDefaults() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
}
