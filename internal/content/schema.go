package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionFileSchema is the JSON Schema every questions/{subject}.json file
// must satisfy before its records are accepted into the bank.
var questionFileSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lecture": map[string]any{
				"type":        "string",
				"description": "Lecture id this question belongs to",
			},
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"category": map[string]any{
				"type": "string",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"hint": map[string]any{
				"type": "string",
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    map[string]any{"type": "string"},
			},
			"correct": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
		},
		"required":             []any{"lecture", "question", "category", "difficulty", "hint", "options", "correct"},
		"additionalProperties": false,
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledQuestionSchema compiles the question file schema once and caches it.
func compiledQuestionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(questionFileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-file.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// decodeQuestionFile validates raw JSON against the question file schema and
// decodes it into questions. Every record is structurally checked; a single
// bad record rejects the whole file so content errors surface loudly.
func decodeQuestionFile(raw []byte) ([]Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledQuestionSchema()
	if err != nil {
		return nil, fmt.Errorf("compile question schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	// The schema cannot express correct < len(options); check per record.
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return questions, nil
}
