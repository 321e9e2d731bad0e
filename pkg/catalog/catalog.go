package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/limaJavier/routine/pkg/model"
	"github.com/samber/lo"
)

var (
	ErrEmptyName      = errors.New("name must not be empty")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotFound       = errors.New("not found")
	ErrSubjectInUse   = errors.New("subject is being used by teachers or classes")
	ErrUnknownSubject = errors.New("unknown subject")
)

var validate = validator.New()

// Teacher is qualified to teach every one of its subjects
type Teacher struct {
	Name     string   `json:"name" toml:"name" mapstructure:"name" validate:"required"`
	Subjects []string `json:"subjects" toml:"subjects" mapstructure:"subjects" validate:"required,min=1,dive,required"`
}

// Class requires every one of its subjects (its curriculum)
type Class struct {
	Name     string   `json:"name" toml:"name" mapstructure:"name" validate:"required"`
	Subjects []string `json:"subjects" toml:"subjects" mapstructure:"subjects" validate:"required,min=1,dive,required"`
}

// Catalog holds the subjects, teachers and classes to schedule. Teachers and classes keep their insertion order.
type Catalog struct {
	Subjects []string  `json:"subjects" toml:"subjects" mapstructure:"subjects" validate:"dive,required"`
	Teachers []Teacher `json:"teachers" toml:"teachers" mapstructure:"teachers" validate:"dive"`
	Classes  []Class   `json:"classes" toml:"classes" mapstructure:"classes" validate:"dive"`
}

func New() *Catalog {
	return &Catalog{
		Subjects: make([]string, 0),
		Teachers: make([]Teacher, 0),
		Classes:  make([]Class, 0),
	}
}

func (catalog *Catalog) AddSubject(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("subject: %w", ErrEmptyName)
	} else if lo.Contains(catalog.Subjects, name) {
		return fmt.Errorf("subject \"%v\": %w", name, ErrAlreadyExists)
	}
	catalog.Subjects = append(catalog.Subjects, name)
	return nil
}

// Removes the subject unless a teacher or a class references it
func (catalog *Catalog) RemoveSubject(name string) error {
	if !lo.Contains(catalog.Subjects, name) {
		return fmt.Errorf("subject \"%v\": %w", name, ErrNotFound)
	}

	referenced := lo.SomeBy(catalog.Teachers, func(teacher Teacher) bool { return lo.Contains(teacher.Subjects, name) }) ||
		lo.SomeBy(catalog.Classes, func(class Class) bool { return lo.Contains(class.Subjects, name) })
	if referenced {
		return fmt.Errorf("cannot remove subject \"%v\": %w", name, ErrSubjectInUse)
	}

	catalog.Subjects = lo.Without(catalog.Subjects, name)
	return nil
}

// Adds the teacher, replacing the subjects of an existing teacher with the same name
func (catalog *Catalog) AddTeacher(name string, subjects []string) error {
	teacher := Teacher{Name: strings.TrimSpace(name), Subjects: lo.Uniq(subjects)}
	if err := catalog.checkEntry("teacher", teacher.Name, teacher.Subjects); err != nil {
		return err
	}

	if _, index, ok := lo.FindIndexOf(catalog.Teachers, func(existing Teacher) bool { return existing.Name == teacher.Name }); ok {
		catalog.Teachers[index] = teacher
	} else {
		catalog.Teachers = append(catalog.Teachers, teacher)
	}
	return nil
}

func (catalog *Catalog) RemoveTeacher(name string) error {
	remaining := lo.Reject(catalog.Teachers, func(teacher Teacher, _ int) bool { return teacher.Name == name })
	if len(remaining) == len(catalog.Teachers) {
		return fmt.Errorf("teacher \"%v\": %w", name, ErrNotFound)
	}
	catalog.Teachers = remaining
	return nil
}

// Adds the class, replacing the curriculum of an existing class with the same name
func (catalog *Catalog) AddClass(name string, subjects []string) error {
	class := Class{Name: strings.TrimSpace(name), Subjects: lo.Uniq(subjects)}
	if err := catalog.checkEntry("class", class.Name, class.Subjects); err != nil {
		return err
	}

	if _, index, ok := lo.FindIndexOf(catalog.Classes, func(existing Class) bool { return existing.Name == class.Name }); ok {
		catalog.Classes[index] = class
	} else {
		catalog.Classes = append(catalog.Classes, class)
	}
	return nil
}

func (catalog *Catalog) RemoveClass(name string) error {
	remaining := lo.Reject(catalog.Classes, func(class Class, _ int) bool { return class.Name == name })
	if len(remaining) == len(catalog.Classes) {
		return fmt.Errorf("class \"%v\": %w", name, ErrNotFound)
	}
	catalog.Classes = remaining
	return nil
}

func (catalog *Catalog) checkEntry(kind, name string, subjects []string) error {
	if name == "" {
		return fmt.Errorf("%v: %w", kind, ErrEmptyName)
	} else if len(subjects) == 0 {
		return fmt.Errorf("%v \"%v\" must have at least one subject", kind, name)
	}
	if unknown, _ := lo.Difference(subjects, catalog.Subjects); len(unknown) > 0 {
		return fmt.Errorf("%v \"%v\" references %v: %w", kind, name, unknown, ErrUnknownSubject)
	}
	return nil
}

// Checks the catalog can be scheduled:
// - Every entry is well formed and names are unique
// - Teachers and classes only reference known subjects
// - Every subject required by a class has at least one qualified teacher
func (catalog *Catalog) Validate() error {
	if err := validate.Struct(catalog); err != nil {
		return fmt.Errorf("malformed catalog: %w", err)
	}

	for kind, names := range map[string][]string{
		"subjects": catalog.Subjects,
		"teachers": lo.Map(catalog.Teachers, func(teacher Teacher, _ int) string { return teacher.Name }),
		"classes":  lo.Map(catalog.Classes, func(class Class, _ int) string { return class.Name }),
	} {
		if duplicates := lo.FindDuplicates(names); len(duplicates) > 0 {
			return fmt.Errorf("duplicate %v %v: %w", kind, duplicates, ErrAlreadyExists)
		}
	}

	for _, teacher := range catalog.Teachers {
		if unknown, _ := lo.Difference(teacher.Subjects, catalog.Subjects); len(unknown) > 0 {
			return fmt.Errorf("teacher \"%v\" references %v: %w", teacher.Name, unknown, ErrUnknownSubject)
		}
	}
	for _, class := range catalog.Classes {
		if unknown, _ := lo.Difference(class.Subjects, catalog.Subjects); len(unknown) > 0 {
			return fmt.Errorf("class \"%v\" references %v: %w", class.Name, unknown, ErrUnknownSubject)
		}
	}

	return catalog.Demand().Validate()
}

// Builds the scheduling demand: classes in catalog order and, for each subject, its teachers in catalog order
func (catalog *Catalog) Demand() model.Demand {
	qualified := make(map[string][]string)
	for _, teacher := range catalog.Teachers {
		for _, subject := range teacher.Subjects {
			qualified[subject] = append(qualified[subject], teacher.Name)
		}
	}

	return model.Demand{
		Classes: lo.Map(catalog.Classes, func(class Class, _ int) string { return class.Name }),
		Curricula: lo.SliceToMap(catalog.Classes, func(class Class) (string, []string) {
			return class.Name, class.Subjects
		}),
		Qualified: qualified,
	}
}
