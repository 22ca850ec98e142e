package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// recordShapeSchema is deliberately tolerant: analysis categories and BRD
// sections carry free-form values, so the only structural requirement is a
// non-empty JSON object.
var recordShapeSchema = gojsonschema.NewStringLoader(`{"type": "object", "minProperties": 1}`)

// parseRecord decodes an AI completion into a keyed record. Anything that is
// not a well-formed, non-empty JSON object is a ParseError; response text is
// never interpreted any other way.
func parseRecord(raw string) (map[string]any, error) {
	result, err := gojsonschema.Validate(recordShapeSchema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, &ParseError{Message: "AI response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		var reasons []string
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return nil, &ParseError{Message: fmt.Sprintf("AI response is not a keyed object: %s", strings.Join(reasons, "; "))}
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, &ParseError{Message: "failed to decode AI response", Cause: err}
	}
	return record, nil
}
