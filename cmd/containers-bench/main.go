package main

import (
	"os"

	"github.com/kocubinski/costor-api/logz"
	"github.com/spf13/cobra"
)

var log = logz.Logger.With().Str("module", "containers-bench").Logger()

func main() {
	root := &cobra.Command{
		Use:   "containers-bench",
		Short: "benchmark and inspect the container library",
	}
	root.AddCommand(benchCommand(), dotCommand())
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
