package cmd

import (
	"fmt"

	"github.com/T-PsyOl/iMove-Workshop/keyevent"
	"github.com/T-PsyOl/iMove-Workshop/recording"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a capture file",
	Long:  `Inspects a capture file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	container, err := recording.Load(path)
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("session: %v\n", container.SessionID)
	for _, stream := range container.Streams {
		fmt.Printf("stream: %v (type %v, %v markers, keyboard=%v)\n",
			stream.Name, stream.Type, len(stream.Labels),
			keyevent.IsKeyboardStream(stream.Name, stream.Type))
	}
}
