// Package schema generates JSON Schema documents for the bridge's wire
// protocol, for use by guest SDK authors.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/geeksperiments/elm-script/domain/entities"
)

// Protocol returns the JSON schema (Draft 2020-12) of the request envelope.
func Protocol() ([]byte, error) {
	return generate(&entities.Request{})
}

// RunConfiguration returns the JSON schema of the startup configuration
// bundle passed to guest programs.
func RunConfiguration() ([]byte, error) {
	return generate(&entities.RunConfig{})
}

func generate(v any) ([]byte, error) {
	reflector := jsonschema.Reflector{
		// Inline the root type's fields rather than hiding them behind a
		// $ref, so guest SDK authors see the envelope shape directly.
		ExpandedStruct: true,
	}
	s := reflector.Reflect(v)

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema for %T: %w", v, err)
	}
	return data, nil
}
