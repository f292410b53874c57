package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ppiankov/credo/internal/model"
)

// WriteJSON renders the report as indented JSON to the given path.
func WriteJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
