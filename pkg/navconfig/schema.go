package navconfig

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of Config, keyed by the yaml field names.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Pagenav Configuration"
	schema.Description = "Schema for the 'pagenav' extension in grove.yml and standalone pagenav config files."

	// Every field has a default
	schema.Required = nil

	return json.MarshalIndent(schema, "", "  ")
}
