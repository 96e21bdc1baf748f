package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() []byte {
	return []byte(`{
		"metadata": {"document_type": "invoice"},
		"key_value_pairs": {"Invoice Number": "42", "Total": "199.00"},
		"text_sections": {"Notes": "net 30"},
		"tables": [
			{
				"table_title": "Line Items",
				"headers": ["Item", "Qty", "Price"],
				"rows": [["Widget", "2", "99.50"]]
			}
		]
	}`)
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	err := ValidateDocumentJSON(validDocument())
	assert.NoError(t, err)
}

func TestValidateRejectsMissingSections(t *testing.T) {
	err := ValidateDocumentJSON([]byte(`{"metadata": {}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	doc := []byte(`{
		"metadata": {},
		"key_value_pairs": {},
		"text_sections": {},
		"tables": "not an array"
	}`)
	assert.Error(t, ValidateDocumentJSON(doc))
}

func TestValidateRejectsTableWithoutHeaders(t *testing.T) {
	doc := []byte(`{
		"metadata": {},
		"key_value_pairs": {},
		"text_sections": {},
		"tables": [{"table_title": "T", "rows": []}]
	}`)
	assert.Error(t, ValidateDocumentJSON(doc))
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	assert.Error(t, ValidateDocumentJSON([]byte(`{"metadata":`)))
}

func TestRepairFillsMissingSections(t *testing.T) {
	repaired, filled, err := RepairDocumentShape([]byte(`{"metadata": {"document_type": "invoice"}}`))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"key_value_pairs", "text_sections", "tables"}, filled)

	// Repaired output now satisfies the schema.
	require.NoError(t, ValidateDocumentJSON(repaired))

	var m map[string]any
	require.NoError(t, json.Unmarshal(repaired, &m))
	assert.Equal(t, "invoice", m["metadata"].(map[string]any)["document_type"])
	assert.Empty(t, m["tables"])
}

func TestRepairLeavesCompleteDocumentAlone(t *testing.T) {
	in := validDocument()
	out, filled, err := RepairDocumentShape(in)
	require.NoError(t, err)
	assert.Nil(t, filled)
	assert.Equal(t, in, out)
}

func TestRepairNeverOverwritesPresentSections(t *testing.T) {
	in := []byte(`{"metadata": {}, "key_value_pairs": {"k": "v"}, "text_sections": {}, "tables": []}`)
	out, filled, err := RepairDocumentShape(in)
	require.NoError(t, err)
	assert.Nil(t, filled)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "v", m["key_value_pairs"].(map[string]any)["k"])
}

func TestRepairRejectsMalformedJSON(t *testing.T) {
	_, _, err := RepairDocumentShape([]byte(`not json`))
	assert.Error(t, err)
}

func TestExtractionPromptCarriesDirective(t *testing.T) {
	base := BuildExtractionSystemPrompt("")
	directed := BuildExtractionSystemPrompt("only extract the totals table")
	assert.NotEqual(t, base, directed)
	assert.Contains(t, directed, "only extract the totals table")
}

func TestReconciliationUserPromptCarriesBothInputs(t *testing.T) {
	p := BuildReconciliationUserPrompt(`{"invoice_no": 42}`, "Invoice #42 raw text")
	assert.Contains(t, p, `{"invoice_no": 42}`)
	assert.Contains(t, p, "Invoice #42 raw text")
}
