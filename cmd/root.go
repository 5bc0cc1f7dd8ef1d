package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imove",
	Short: "iMove workshop tools",
	Long:  `Keyboard emitter, marker recorder and offline analysis for the iMove workshop.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
