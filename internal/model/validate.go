package model

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// cvDraftSchema is the contract the parse service promised for CV drafts.
// Anything failing it is treated as a parse failure, never half-applied.
const cvDraftSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "title": {"type": ["string", "null"]},
    "bio": {"type": ["string", "null"]},
    "languages": {"type": ["array", "null"], "items": {"type": "string"}},
    "key_competencies": {"type": ["array", "null"], "items": {"type": "string"}},
    "work_experiences": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["company", "title"],
        "properties": {
          "company": {"type": "string"},
          "title": {"type": "string"},
          "time_frame": {"type": ["string", "null"]},
          "description": {"type": ["string", "null"]}
        }
      }
    },
    "educations": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["institution", "degree"],
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "time_frame": {"type": ["string", "null"]},
          "location": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

// ValidateCVDraft checks a raw parse-service payload against the draft
// schema before it is decoded and returned to the caller.
func ValidateCVDraft(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(cvDraftSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("cv draft validation failed: %s", strings.Join(msgs, "; "))
}
