package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/limaJavier/routine/pkg/model"
)

// CSVExporter writes every class table one after the other, separated by an empty record
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(w io.Writer, routine model.Routine) error {
	writer := csv.NewWriter(w)

	for i, table := range Tables(routine) {
		if i > 0 {
			if err := writer.Write([]string{}); err != nil {
				return fmt.Errorf("write csv separator: %w", err)
			}
		}
		if err := writer.Write([]string{table.Title}); err != nil {
			return fmt.Errorf("write csv title: %w", err)
		}
		if err := writer.Write(table.Headers); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
		if err := writer.WriteAll(table.Rows); err != nil {
			return fmt.Errorf("write csv rows: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
