// internal/intake/recorder/schema.go
package recorder

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// submissionSchema is enforced only when strict mode is enabled. The default
// behavior is parse-only, matching the original recorder.
const submissionSchema = `{
	"type": "object",
	"required": ["fullName", "age", "email", "phone", "city", "familyBusiness"],
	"properties": {
		"fullName":          {"type": "string", "minLength": 1},
		"age":               {"type": "integer", "minimum": 16, "maximum": 31},
		"email":             {"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$"},
		"phone":             {"type": "string"},
		"city":              {"type": "string", "minLength": 1},
		"familyBusiness":    {"type": "string", "minLength": 1},
		"personalInterests": {"type": "string"},
		"networkingGoals":   {"type": "string"},
		"referralSource":    {"type": "string"},
		"timestamp":         {"type": "string"}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(submissionSchema)

func validateSubmission(body []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}
