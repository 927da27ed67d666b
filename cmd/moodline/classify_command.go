package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"moodline/internal/classifier"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <image>",
		Short: "Classify a single JPEG image through the analysis sidecar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			client := classifier.NewClient(classifier.Config{
				Endpoint:       cfg.Classifier.Endpoint,
				Detector:       cfg.Classifier.Detector,
				TimeoutSeconds: cfg.Classifier.TimeoutSeconds,
			})

			timeout := time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second
			classifyCtx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			label, err := client.Classify(classifyCtx, image)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(label))
			return nil
		},
	}
	return cmd
}
