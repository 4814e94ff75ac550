package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tonescribe/tonescribe/pipeline"
)

func init() {
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <input> <output.mid>",
	Short: "Transcribes an audio file to MIDI",
	Long:  `Transcribes an audio file to MIDI`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := pipeline.New(newLogger())
		return t.Transcribe(args[0], args[1])
	},
}
