package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/sirupsen/logrus"
	"os"
	"strings"
)

const EnvPath = "CATALOG_PATH"

// EntryDocument is a part record as authored in the catalog file.
type EntryDocument struct {
	Name   string `json:"NAME" jsonschema:"title=Part name,minLength=1,required"`
	Unlock string `json:"UNLOCK" jsonschema:"title=Unlock condition,description=How the part is obtained in game,required"`
}

// Parse reads the catalog file format: an object keyed by category whose values
// are arrays of either a header string (placeholder) or an EntryDocument.
func Parse(data []byte) (Model, error) {
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Model{}, fmt.Errorf("decode catalog: %w", err)
	}
	entries := make(map[string][]Entry, len(raw))
	for category, positions := range raw {
		name := strings.ToUpper(category)
		if _, ok := entries[name]; ok {
			return Model{}, fmt.Errorf("catalog declares category [%s] more than once", name)
		}
		es := make([]Entry, 0, len(positions))
		for i, p := range positions {
			e, err := parseEntry(name, uint32(i), p)
			if err != nil {
				return Model{}, err
			}
			es = append(es, e)
		}
		entries[name] = es
	}
	return NewModel(entries), nil
}

func parseEntry(category string, index uint32, raw json.RawMessage) (Entry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Entry{}, fmt.Errorf("catalog [%s] index [%d] is empty", category, index)
	}
	switch trimmed[0] {
	case '"':
		var label string
		if err := json.Unmarshal(trimmed, &label); err != nil {
			return Entry{}, fmt.Errorf("catalog [%s] index [%d]: %w", category, index, err)
		}
		return NewPlaceholder(category, index, label), nil
	case '{':
		var doc EntryDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return Entry{}, fmt.Errorf("catalog [%s] index [%d]: %w", category, index, err)
		}
		return NewEntry(category, index, doc.Name, doc.Unlock), nil
	case 'n':
		return NewPlaceholder(category, index, ""), nil
	}
	return Entry{}, fmt.Errorf("catalog [%s] index [%d] has unsupported value %s", category, index, string(trimmed))
}

func Load(l logrus.FieldLogger) func(path string) (Model, error) {
	return func(path string) (Model, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			l.WithError(err).Errorf("Unable to read catalog [%s].", path)
			return Model{}, err
		}
		m, err := Parse(data)
		if err != nil {
			l.WithError(err).Errorf("Unable to parse catalog [%s].", path)
			return Model{}, err
		}
		l.Infof("Loaded part catalog [%s] with [%d] categories.", path, len(m.entries))
		return m, nil
	}
}

func LoadFromEnv(l logrus.FieldLogger) (Model, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = "sl_parts.json"
	}
	return Load(l)(path)
}
