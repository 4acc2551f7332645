// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/loglens/loglens/internal/pkg/logging"
	"github.com/loglens/loglens/internal/pkg/must"
	"github.com/loglens/loglens/pkg/build"
	"github.com/loglens/loglens/pkg/config"
	"github.com/loglens/loglens/pkg/export"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "loglens",
		Short:   "Flatten and chart OTLP log export payloads",
		Version: build.Version,
	}
	log = logging.Log()

	// Global flags
	outputFlag   *string
	verbose      *int
	endpointFlag *string
	configFlag   *string
	templateFlag *string
	panicOnErr   *bool
)

func init() {
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")
	outputFlag = rootCmd.PersistentFlags().StringP("output", "o", "json-pretty", "Output format: json, json-pretty, ndjson, yaml or template")
	verbose = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")
	endpointFlag = rootCmd.PersistentFlags().String("endpoint", "", "URL serving the OTLP logs export payload")
	configFlag = rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file")
	templateFlag = rootCmd.PersistentFlags().StringP("template", "t", "", "Go template for -o template, applied to each entry")

	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
}

// newConfig resolves defaults, config file, environment and flags, in
// increasing order of precedence.
func newConfig() *config.Config {
	cfg := config.New()
	if *configFlag != "" {
		cfg = must.Must1(config.Load(*configFlag))
	}
	if *endpointFlag != "" {
		cfg.Endpoint = *endpointFlag
	}
	return cfg
}

func newClient(cfg *config.Config) *export.Client {
	u := must.Must1(url.Parse(cfg.Endpoint))
	return export.New(&http.Client{Timeout: cfg.Timeout.Duration}, u)
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
