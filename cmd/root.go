package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tonescribe",
	Short: "Audio to MIDI transcription",
	Long:  `Converts recorded audio into MIDI note events, as a one-shot CLI or an HTTP service.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
