package mapping

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaID is the $id published with the schema.
const SchemaID = "https://typelist.dev/schema/typelist.yaml.json"

// Schema returns the JSON schema of typelist.yaml. Property names follow the
// yaml tags, so the schema validates the YAML file as editors load it.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:   "yaml",
		DoNotReference: true,
		ExpandedStruct: true,
	}

	s := r.Reflect(&File{})
	s.ID = SchemaID
	s.Title = "typelist-gen configuration"

	return s
}

// SchemaJSON renders Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}

// JSONSchema describes both spellings of a record entry.
func (Record) JSONSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("type", &jsonschema.Schema{
		Type:        "string",
		Description: "Struct type name.",
	})
	props.Set("positional", &jsonschema.Schema{
		Type:        "boolean",
		Description: "Match fields by position and type instead of by name.",
	})

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string", Description: "Struct type name."},
			{
				Type:                 "object",
				Properties:           props,
				Required:             []string{"type"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
		},
	}
}
