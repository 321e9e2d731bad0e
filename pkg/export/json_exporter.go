package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/limaJavier/routine/pkg/model"
)

// JSONExporter writes class -> day -> slot -> assignment, where empty cells are null
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(w io.Writer, routine model.Routine) error {
	perClassRoutine := make(map[string]map[string]map[string]*model.Assignment, len(routine.Classes))
	for _, class := range routine.Classes {
		perClassRoutine[class] = make(map[string]map[string]*model.Assignment, len(routine.Grid.Days))
		for day, slots := range routine.Timetables[class].Days() {
			perClassRoutine[class][day] = make(map[string]*model.Assignment, len(slots))
			for slot, assignment := range slots {
				if assignment.Empty() {
					perClassRoutine[class][day][slot] = nil
					continue
				}
				perClassRoutine[class][day][slot] = &assignment
			}
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(perClassRoutine); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
