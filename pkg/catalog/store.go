package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Store persists a catalog as a keyed document. The format follows the file extension: ".toml" or JSON otherwise.
type Store struct {
	path   string
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

func (store *Store) Path() string {
	return store.path
}

// Reads the catalog; a missing document yields an empty catalog
func (store *Store) Load() (*Catalog, error) {
	data, err := os.ReadFile(store.path)
	if errors.Is(err, fs.ErrNotExist) {
		store.logger.Info("catalog document not found, starting empty", zap.String("path", store.path))
		return New(), nil
	} else if err != nil {
		return nil, fmt.Errorf("cannot read catalog: %w", err)
	}

	var catalog *Catalog
	if store.isToml() {
		catalog, err = catalogFromToml(data)
	} else {
		catalog, err = catalogFromJson(data)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse catalog \"%v\": %w", store.path, err)
	}

	store.logger.Debug("catalog loaded",
		zap.String("path", store.path),
		zap.Int("subjects", len(catalog.Subjects)),
		zap.Int("teachers", len(catalog.Teachers)),
		zap.Int("classes", len(catalog.Classes)),
	)
	return catalog, nil
}

func (store *Store) Save(catalog *Catalog) error {
	var (
		data []byte
		err  error
	)
	if store.isToml() {
		data, err = toml.Marshal(catalog)
	} else {
		data, err = json.MarshalIndent(catalog, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("cannot encode catalog: %w", err)
	}

	if err := os.WriteFile(store.path, data, 0666); err != nil {
		return fmt.Errorf("cannot write catalog: %w", err)
	}
	store.logger.Debug("catalog saved", zap.String("path", store.path))
	return nil
}

func (store *Store) isToml() bool {
	return strings.EqualFold(filepath.Ext(store.path), ".toml")
}

func catalogFromToml(data []byte) (*Catalog, error) {
	catalog := New()
	if err := toml.Unmarshal(data, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Accepts teachers and classes either as lists of {name, subjects} or keyed by name ({name: [subjects]}).
// Keyed entries keep their document order.
func catalogFromJson(data []byte) (*Catalog, error) {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	catalog := New()
	if raw, ok := document["subjects"]; ok {
		var subjects any
		if err := json.Unmarshal(raw, &subjects); err != nil {
			return nil, fmt.Errorf("subjects: %w", err)
		}
		if err := mapstructure.Decode(subjects, &catalog.Subjects); err != nil {
			return nil, fmt.Errorf("subjects: %w", err)
		}
	}

	teachers, err := decodeEntries(document["teachers"])
	if err != nil {
		return nil, fmt.Errorf("teachers: %w", err)
	}
	classes, err := decodeEntries(document["classes"])
	if err != nil {
		return nil, fmt.Errorf("classes: %w", err)
	}

	catalog.Teachers = lo.Map(teachers, func(item entry, _ int) Teacher { return Teacher(item) })
	catalog.Classes = lo.Map(classes, func(item entry, _ int) Class { return Class(item) })
	return catalog, nil
}

// entry is the document form shared by teachers and classes
type entry struct {
	Name     string   `mapstructure:"name"`
	Subjects []string `mapstructure:"subjects"`
}

func decodeEntries(raw json.RawMessage) ([]entry, error) {
	entries := make([]entry, 0)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return entries, nil
	}

	switch trimmed[0] {
	case '[':
		var list []any
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		err := mapstructure.Decode(list, &entries)
		return entries, err
	case '{':
		return decodeKeyedEntries(trimmed)
	default:
		return nil, fmt.Errorf("unexpected document value %s", trimmed)
	}
}

// Walks a {name: [subjects]} object token by token so entries keep the order of the document
func decodeKeyedEntries(raw []byte) ([]entry, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	entries := make([]entry, 0)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		name, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", token)
		}

		var value any
		if err := decoder.Decode(&value); err != nil {
			return nil, fmt.Errorf("\"%v\": %w", name, err)
		}
		var subjects []string
		if err := mapstructure.Decode(value, &subjects); err != nil {
			return nil, fmt.Errorf("\"%v\": %w", name, err)
		}
		entries = append(entries, entry{Name: name, Subjects: subjects})
	}
	return entries, nil
}
