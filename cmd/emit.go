package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/T-PsyOl/iMove-Workshop/keyevent"
	"github.com/T-PsyOl/iMove-Workshop/marker"
	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var emitParticipant string
var emitEndpoint string
var emitSpaced bool

func init() {
	emitCmd.Flags().StringVar(&emitParticipant, "participant", "P1", "participant name for this keyboard")
	emitCmd.Flags().StringVar(&emitEndpoint, "collector", "http://localhost:8080/markers", "collector markers endpoint")
	emitCmd.Flags().BoolVar(&emitSpaced, "spaced", false, "publish spaced labels instead of pressedC-style")
	rootCmd.AddCommand(emitCmd)
}

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Publishes key events from a MIDI keyboard",
	Long:  `Publishes key events from a MIDI keyboard`,
	Run: func(cmd *cobra.Command, args []string) {
		emit()
	},
}

var keyNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func keyName(key uint8) string {
	return keyNames[key%12]
}

func emit() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	format := keyevent.FormatCompact
	if emitSpaced {
		format = keyevent.FormatSpaced
	}

	outlet := marker.NewHTTPOutlet(emitEndpoint)
	defer outlet.Close()
	sessionID := uuid.New().String()

	publish := func(action model.Action, key uint8, timestampms int32) {
		sample := model.MarkerSample{
			Session:     sessionID,
			Participant: emitParticipant,
			Timestamp:   float64(timestampms) / 1000,
			Label:       keyevent.BuildLabel(action, keyName(key), format),
		}
		if err := outlet.Push(sample); err != nil {
			fmt.Printf("Could not publish marker: %v\n", err)
		}
	}

	// one synchronous publish per physical key transition: a NoteOn
	// with velocity 0 counts as the release
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			publish(model.Press, key, timestampms)
		case msg.GetNoteEnd(&ch, &key):
			publish(model.Release, key, timestampms)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	fmt.Printf("Emitting as %v, ctrl-c to stop\n", emitParticipant)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
