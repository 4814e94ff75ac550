package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonescribe/tonescribe/midifile"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects the note events of a MIDI file",
	Long:  `Inspects the note events of a MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := midifile.ReadNotes(args[0])
		if err != nil {
			return err
		}
		for i, n := range notes {
			fmt.Printf("%3d: pitch=%d velocity=%d start=%.3f end=%.3f\n",
				i, n.Pitch, n.Velocity, n.Start, n.End)
		}
		fmt.Printf("%v notes total\n", len(notes))
		return nil
	},
}
