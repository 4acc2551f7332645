// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package main

import (
	"context"
	"os"

	"github.com/loglens/loglens/internal/pkg/must"
	"github.com/loglens/loglens/pkg/logs"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [logs|histogram]",
	Short: "Fetch the payload once, flatten it and print the result.",
	Long: `Fetch the payload once, flatten it and print the result.
"get logs" (the default) prints the flattened entries newest first,
"get histogram" prints the time-bucketed counts instead.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"logs", "histogram"},
	Run: func(_ *cobra.Command, args []string) {
		defer StartProfile().Stop()
		cfg := newConfig()
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout.Duration)
		defer cancel()

		payload := must.Must1(newClient(cfg).Get(ctx))
		entries := logs.Normalize(payload)
		log.V(1).Info("fetched payload", "endpoint", cfg.Endpoint, "records", len(entries))

		p := newPrinter(os.Stdout)
		defer p.Close()
		if len(args) > 0 && args[0] == "histogram" {
			for _, b := range logs.Histogram(entries) {
				p.Append(b)
			}
			return
		}
		for _, e := range entries {
			p.Append(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
