package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	dictPath   string
)

func main() {
	var (
		debugMode  bool
		showSprite bool
	)
	exitCode := 0

	rootCommand := cobra.Command{
		Use:           "poke-lookup [japanese-name]",
		Short:         "Resolve a Japanese Pokémon name to its English name",
		Long:          "Look up the English, PokéAPI-compatible name of a Pokémon from its Japanese (katakana) name,\nusing a locally cached dictionary kept fresh with 'poke-lookup update'.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			code, err := runLookup(cmd.Context(), query, showSprite)
			if err != nil {
				return err
			}
			exitCode = code
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().StringVar(&dictPath, "dict", "", "explicit path of the dictionary file")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCommand.Flags().BoolVarP(&showSprite, "show-sprite", "s", false, "Show the sprite of the selected species before confirming")

	rootCommand.AddCommand(
		newUpdateCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// setupLogger configures the default logger based on debug mode.
// Diagnostics go to stderr; stdout is reserved for the resolved name.
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})),
	)
}
