package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"moodline/internal/emotion"
	"moodline/internal/generation"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var mode string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate [emotion...]",
		Short: "Generate one sentence from a list of emotion labels",
		Long: "Maps the supplied emotion labels through the configured structure " +
			"mode and runs one generation request. Useful for checking backend " +
			"credentials and prompt output without a camera.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			modeValue := cfg.Structure.Mode
			if value := strings.ToLower(strings.TrimSpace(mode)); value != "" {
				modeValue = value
			}
			parsedMode, err := emotion.ParseMode(modeValue)
			if err != nil {
				return err
			}

			labels := make([]emotion.Label, 0, len(args))
			for _, arg := range args {
				label := emotion.Normalize(arg)
				if !emotion.Known(label) {
					return fmt.Errorf("unknown emotion %q (expected one of %s)", arg, vocabularyList())
				}
				labels = append(labels, label)
			}

			tags := parsedMode.Sequence(labels)
			prompt := parsedMode.Prompt(tags)

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(labels))
			for i, label := range labels {
				rows = append(rows, []string{string(label), string(tags[i])})
			}
			fmt.Fprintln(out, renderTable([]string{"Emotion", "Structure"}, rows))
			fmt.Fprintf(out, "Prompt: %s\n", prompt)

			if dryRun {
				return nil
			}

			timeout := time.Duration(cfg.Generation.TimeoutSeconds) * time.Second
			genCtx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			sentence, err := generation.New(cfg.Generation).Generate(genCtx, prompt)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Sentence: %s\n", sentence)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Structure mode: grammatical or functional (overrides config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the prompt without calling the backend")

	return cmd
}

func vocabularyList() string {
	names := make([]string, 0, len(emotion.Vocabulary))
	for _, label := range emotion.Vocabulary {
		names = append(names, string(label))
	}
	return strings.Join(names, ", ")
}
