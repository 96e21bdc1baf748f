package llm

import (
	"encoding/json"
)

// sectionDefaults are the document sections the schema requires and the
// empty container each gets when the model omits it.
var sectionDefaults = map[string]func() any{
	"metadata":        func() any { return map[string]any{} },
	"key_value_pairs": func() any { return map[string]any{} },
	"text_sections":   func() any { return map[string]any{} },
	"tables":          func() any { return []any{} },
}

// RepairDocumentShape fills in required sections the model left out so an
// otherwise-usable response can still validate. It only ADDS empty
// containers; present values are never touched. Returns the (possibly
// rewritten) JSON and the names of the sections that were filled.
func RepairDocumentShape(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var filled []string
	for key, zero := range sectionDefaults {
		if _, ok := m[key]; !ok {
			m[key] = zero()
			filled = append(filled, key)
		}
	}
	if len(filled) == 0 {
		return doc, nil, nil
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return out, filled, nil
}
