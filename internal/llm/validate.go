package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	docSchemaOnce sync.Once
	docSchema     *jsonschema.Schema
	docSchemaErr  error
)

// ValidateDocumentJSON checks candidate model output against the document
// schema. The schema is fixed for the process lifetime, so it is compiled
// once and shared by the extraction and reconciliation stages.
func ValidateDocumentJSON(data []byte) error {
	docSchemaOnce.Do(func() {
		b, err := json.Marshal(BuildDocumentJSONSchema())
		if err != nil {
			docSchemaErr = fmt.Errorf("marshal document schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("document.json", bytes.NewReader(b)); err != nil {
			docSchemaErr = fmt.Errorf("add document schema: %w", err)
			return
		}
		docSchema, docSchemaErr = compiler.Compile("document.json")
	})
	if docSchemaErr != nil {
		return fmt.Errorf("document schema unavailable: %w", docSchemaErr)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal candidate document: %w", err)
	}
	if err := docSchema.Validate(v); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
