package llm

import "strings"

// BuildExtractionSystemPrompt composes the system message for the structured
// extraction branch. The caller's directive, if any, is appended so the
// submitter can steer what gets pulled out of the document.
func BuildExtractionSystemPrompt(directive string) string {
	parts := []string{
		"You are a document parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract every piece of structured information from the attached document:",
		"document-level metadata into 'metadata', labeled values into 'key_value_pairs',",
		"prose passages into 'text_sections' keyed by their heading,",
		"and tabular data into 'tables' with 'headers' and 'rows'.",
		"Do not invent values that are not present in the document.",
	}
	if d := strings.TrimSpace(directive); d != "" {
		parts = append(parts, "Additional instructions from the submitter: "+d)
	}
	return strings.Join(parts, " ")
}

// BuildReconciliationSystemPrompt composes the system message for the
// reconciliation stage, which cross-checks the structured extraction against
// independently OCR'd text.
func BuildReconciliationSystemPrompt() string {
	return strings.Join([]string{
		"You are a reconciliation engine. You receive a structured JSON extraction",
		"of a document and the raw OCR text of the same document.",
		"Cross-check every extracted value against the OCR text, correct values the",
		"OCR contradicts, add values the extraction missed, and drop values that",
		"appear in neither input. Return ONLY JSON matching the provided JSON Schema,",
		"the same shape as the structured input.",
	}, " ")
}

// BuildReconciliationUserPrompt packages both reconciliation inputs into one
// user message.
func BuildReconciliationUserPrompt(extractedJSON, rawText string) string {
	var b strings.Builder
	b.WriteString("Structured extraction:\n")
	b.WriteString(extractedJSON)
	b.WriteString("\n\nRaw OCR text:\n")
	b.WriteString(rawText)
	return b.String()
}
