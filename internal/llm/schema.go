package llm

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the structured document shape: document metadata,
// flat key-value pairs, named text sections, and tables. We pass this to the
// model as an output constraint and also use it locally to validate.
func BuildDocumentJSONSchema() map[string]any {
	tableProp := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"table_title": map[string]any{"type": "string"},
			"headers":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"rows": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "array"},
			},
		},
		"required": []string{"headers", "rows"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"metadata":        map[string]any{"type": "object"},
			"key_value_pairs": map[string]any{"type": "object"},
			"text_sections": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
			"tables": map[string]any{"type": "array", "items": tableProp},
		},
		"required": []string{"metadata", "key_value_pairs", "text_sections", "tables"},
	}
}
