package main

import (
	"strings"

	"github.com/spf13/cobra"

	"moodline/internal/pipelinerun"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var device string
	var backend string
	var mode string
	var bufferSize int
	var logLevel string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Capture webcam emotions and display generated sentences",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if value := strings.TrimSpace(device); value != "" {
				cfg.Capture.Device = value
			}
			if value := strings.ToLower(strings.TrimSpace(backend)); value != "" {
				cfg.Generation.Backend = value
			}
			if value := strings.ToLower(strings.TrimSpace(mode)); value != "" {
				cfg.Structure.Mode = value
			}
			if bufferSize > 0 {
				cfg.History.Capacity = bufferSize
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return pipelinerun.Run(cmd.Context(), cfg, pipelinerun.Options{
				LogLevel: logLevel,
			})
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "Video4Linux device (overrides config)")
	cmd.Flags().StringVar(&backend, "backend", "", "Generation backend: dukegpt or openai (overrides config)")
	cmd.Flags().StringVar(&mode, "mode", "", "Structure mode: grammatical or functional (overrides config)")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 0, "Emotion history window size (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	return cmd
}
