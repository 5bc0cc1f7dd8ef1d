package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/T-PsyOl/iMove-Workshop/constants"
	"github.com/T-PsyOl/iMove-Workshop/db"
	"github.com/T-PsyOl/iMove-Workshop/keyevent"
	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/T-PsyOl/iMove-Workshop/note"
	"github.com/T-PsyOl/iMove-Workshop/recording"
	"github.com/T-PsyOl/iMove-Workshop/synchrony"
	"github.com/T-PsyOl/iMove-Workshop/synth"
	"github.com/T-PsyOl/iMove-Workshop/util"
	"github.com/T-PsyOl/iMove-Workshop/wav"
	"github.com/spf13/cobra"
)

var analyzeLabelFormat string

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLabelFormat, "label-format", "spaced", "marker label format: spaced or compact")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Runs the offline analysis pipeline on a capture file",
	Long:  `Runs the offline analysis pipeline on a capture file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		format, err := parseLabelFormat(analyzeLabelFormat)
		cobra.CheckErr(err)
		cobra.CheckErr(Analyze(args[0], format, constants.GetOutDir()))
	},
}

func parseLabelFormat(s string) (keyevent.LabelFormat, error) {
	switch strings.ToLower(s) {
	case "spaced":
		return keyevent.FormatSpaced, nil
	case "compact":
		return keyevent.FormatCompact, nil
	}
	return 0, fmt.Errorf("unknown label format: %v", s)
}

// applyRoster swaps raw stream names for roster display names when a
// roster table is configured. Lookup failure only costs the nicer
// labels.
func applyRoster(participants []model.Participant) {
	if constants.GetRosterTable() == "" {
		return
	}

	names := make([]string, len(participants))
	for i := range participants {
		names[i] = participants[i].Name
	}
	entries, err := db.GetRosterEntries(names)
	if err != nil {
		fmt.Printf("Skipping roster lookup because: %v\n", err)
		return
	}
	for i := range participants {
		if entry, ok := entries[participants[i].Name]; ok && entry.DisplayName != "" {
			participants[i].Name = entry.DisplayName
		}
	}
}

func writeTimeline(path string, participants []model.Participant) error {
	timeline := make(map[string][]model.TimelineSegment)
	for i := range participants {
		timeline[participants[i].Name] = note.Segments(participants[i].Notes)
	}
	data, err := json.MarshalIndent(timeline, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0777)
}

func writeMatrixCSV(path string, m *synchrony.Matrix) error {
	var sb strings.Builder
	sb.WriteString("participant")
	for _, name := range m.Names {
		sb.WriteString("," + name)
	}
	sb.WriteString("\n")
	for i, name := range m.Names {
		sb.WriteString(name)
		for j := range m.Names {
			sb.WriteString("," + strconv.FormatFloat(m.Scores[i][j], 'f', 6, 64))
		}
		sb.WriteString("\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0777)
}

// Analyze runs parse -> pair -> align -> {synthesize, analyze} over one
// capture file and drops the artifacts into outDir.
func Analyze(path string, format keyevent.LabelFormat, outDir string) error {
	container, err := recording.Load(path)
	if err != nil {
		return err
	}

	participants, err := keyevent.ExtractParticipants(container, format)
	if err != nil {
		return err
	}
	applyRoster(participants)

	note.PairAll(participants)
	t0, ok := note.Align(participants)
	if !ok {
		return fmt.Errorf("no press events in any keyboard stream of %v", path)
	}
	fmt.Printf("Aligned %v participants to origin t0=%v\n", len(participants), t0)

	util.RecreateDir(outDir)

	// sonification
	opts := synth.DefaultOptions()
	buffers, mixed := synth.RenderAll(participants, opts)
	for i, buf := range buffers {
		filename := filepath.Join(outDir, fmt.Sprintf("participant-%02d.wav", i+1))
		if err := wav.WriteFile(filename, buf, opts.SampleRate); err != nil {
			return err
		}
	}
	if err := wav.WriteFile(filepath.Join(outDir, "mixed.wav"), mixed, opts.SampleRate); err != nil {
		return err
	}

	// timeline segments for the visualization sink
	if err := writeTimeline(filepath.Join(outDir, "timeline.json"), participants); err != nil {
		return err
	}

	// synchrony
	matrix, err := synchrony.Analyze(participants)
	if err == synchrony.ErrTooFewParticipants {
		fmt.Println("Skipping synchrony: need at least 2 keyboard streams")
		return nil
	}
	if err != nil {
		return err
	}
	if err := writeMatrixCSV(filepath.Join(outDir, "asynchrony.csv"), matrix); err != nil {
		return err
	}

	overall, undefined := matrix.Overall()
	for i, name := range matrix.Names {
		fmt.Printf("%v: %v\n", name, matrix.Scores[i])
	}
	fmt.Printf("Overall asynchrony: %v (undefined pairs: %v)\n", overall, undefined)
	return nil
}
