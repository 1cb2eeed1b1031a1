package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-jump/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default configuration of a mode",
	Long: `Print the built-in YAML configuration of a mode. Save it and pass the
file to --config to tune a session.

Examples:
  spacejump config > spacejump.yaml
  spacejump play --config spacejump.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	id, err := modeArg(args)
	if err != nil {
		return err
	}
	data := config.GetDefaultYAML(id)
	if data == nil {
		return fmt.Errorf("mode %q has no default configuration", id)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
