package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tonescribe/tonescribe/constants"
	"github.com/tonescribe/tonescribe/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the transcription HTTP service",
	Long:  `Runs the transcription HTTP service`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.New(newLogger())
		if err != nil {
			return err
		}
		return s.Run(constants.GetPort())
	},
}
