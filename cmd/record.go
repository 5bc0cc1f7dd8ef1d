package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/T-PsyOl/iMove-Workshop/constants"
	"github.com/T-PsyOl/iMove-Workshop/marker"
	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var collector *marker.Collector

func init() {
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Collects published markers into a capture file",
	Long:  `Collects published markers into a capture file`,
	Run: func(cmd *cobra.Command, args []string) {
		record()
	},
}

func HandleMarkers(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var sample model.MarkerSample
	err = json.Unmarshal(reqBody, &sample)
	if err != nil {
		http.Error(w, "Could not unmarshal marker: "+err.Error(), 400)
		return
	}
	if sample.Participant == "" {
		http.Error(w, "Marker is missing a participant", 400)
		return
	}

	collector.Ingest(sample)
}

func HandleFlush(w http.ResponseWriter, r *http.Request) {
	path, err := collector.Flush(constants.GetRecordingsDir())
	if err != nil {
		http.Error(w, "Could not flush session: "+err.Error(), 500)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"path": path})
}

func StartCollector() {
	collector = marker.NewCollector()
}

func record() {
	StartCollector()
	os.MkdirAll(constants.GetRecordingsDir(), 0777)

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/markers", HandleMarkers).Methods("POST")
	router.HandleFunc("/flush", HandleFlush).Methods("POST")

	// workshop dashboards poke this from the browser
	handler := cors.Default().Handler(router)

	fmt.Printf("Recording session %v on :8080\n", collector.SessionID())
	log.Fatal(http.ListenAndServe(":8080", handler))
}
