package experiment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// exportRecord is one JSONL line: a record type tag plus the payload.
type exportRecord struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ExportJSONL writes the run result as line-delimited JSON: one run
// record, then every debate record, then every learning event, in
// question order. External persistence and charting consume this.
func ExportJSONL(w io.Writer, res *ExperimentResult) error {
	enc := json.NewEncoder(w)

	if err := enc.Encode(exportRecord{Type: "experiment_result", Data: res}); err != nil {
		return fmt.Errorf("export run record: %w", err)
	}
	for _, d := range res.AllDebates() {
		if err := enc.Encode(exportRecord{Type: "debate_result", Data: d}); err != nil {
			return fmt.Errorf("export debate %s: %w", d.ID, err)
		}
	}
	for _, ev := range res.AllEvents() {
		if err := enc.Encode(exportRecord{Type: "learning_event", Data: ev}); err != nil {
			return fmt.Errorf("export learning event: %w", err)
		}
	}
	return nil
}

// ExportFile writes the JSONL export to path, creating or truncating it.
func ExportFile(path string, res *ExperimentResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := ExportJSONL(f, res); err != nil {
		return err
	}
	return f.Close()
}
