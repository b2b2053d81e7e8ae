package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/buildconfgo/internal/app"
	"github.com/vk/buildconfgo/internal/cli"
	"github.com/vk/buildconfgo/internal/config"
	"github.com/vk/buildconfgo/internal/hcl"
	"github.com/vk/buildconfgo/internal/yaml"
)

// main is the entrypoint for the buildconfgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Fatal startup errors inside app.NewApp panic; they are recovered
// here and surfaced as ordinary errors.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	buildconfApp := app.NewApp(outW, appConfig, loaderForPath(appConfig.ConfigPath))
	return buildconfApp.Run(context.Background())
}

// loaderForPath picks the configuration loader by file extension. Directories
// default to HCL.
func loaderForPath(path string) config.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.NewLoader()
	default:
		return hcl.NewLoader()
	}
}
