package catalog

import (
	"github.com/invopop/jsonschema"
	"reflect"
)

// Schema describes the catalog file for editor tooling and validation.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	entry := reflector.ReflectFromType(reflect.TypeOf(EntryDocument{}))
	entry.Version = ""
	entry.Title = "Part"
	entry.Description = "A part record with its display name and unlock condition."

	header := &jsonschema.Schema{
		Type:        "string",
		Title:       "Placeholder",
		Description: "Category header row. Keeps indices aligned with the game table and carries no part data.",
	}

	positions := &jsonschema.Schema{
		Type:        "array",
		Title:       "Category Catalog",
		Description: "Catalog positions for one category. The array index is the part identifier stored in memory.",
		Items: &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{header, entry},
		},
	}

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                "Part Catalog",
		Description:          "Part names and unlock conditions keyed by category.",
		Type:                 "object",
		AdditionalProperties: positions,
	}
}
