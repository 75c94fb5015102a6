package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/haguru/signupgate/config"
	"github.com/haguru/signupgate/internal/app"
)

func main() {
	configPath := flag.String("config", config.CONFIG_PATH, "path to the service configuration file")
	flag.Parse()

	app, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	// Run blocks until SIGINT or SIGTERM.
	if err := app.Run(); err != nil {
		app.Logger.Error("App stopped with error", "error", err)
		os.Exit(1)
	}
}
