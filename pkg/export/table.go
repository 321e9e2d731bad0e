package export

import (
	"fmt"
	"io"

	"github.com/limaJavier/routine/pkg/model"
)

// Table is the rendering of a single class: one row per time slot and one column per working day
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Exporter writes a generated routine into w
type Exporter interface {
	Export(w io.Writer, routine model.Routine) error
}

var exporters = map[string]func() Exporter{
	"csv":  func() Exporter { return NewCSVExporter() },
	"pdf":  func() Exporter { return NewPDFExporter() },
	"json": func() Exporter { return NewJSONExporter() },
}

func Formats() []string {
	return []string{"csv", "json", "pdf"}
}

func NewExporter(format string) (Exporter, error) {
	constructor, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format \"%v\", expected one of %v", format, Formats())
	}
	return constructor(), nil
}

// Builds one table per class, in class order. Filled cells are labeled "<Subject>\n(<Teacher>)".
func Tables(routine model.Routine) []Table {
	tables := make([]Table, 0, len(routine.Classes))
	for _, class := range routine.Classes {
		timetable := routine.Timetables[class]

		rows := make([][]string, 0, len(routine.Grid.Slots))
		for slot, slotName := range routine.Grid.Slots {
			row := make([]string, 0, len(routine.Grid.Days)+1)
			row = append(row, slotName)
			for day := range routine.Grid.Days {
				row = append(row, timetable.Cell(day, slot).Label())
			}
			rows = append(rows, row)
		}

		tables = append(tables, Table{
			Title:   fmt.Sprintf("Class %v - Routine", class),
			Headers: append([]string{"Time"}, routine.Grid.Days...),
			Rows:    rows,
		})
	}
	return tables
}
