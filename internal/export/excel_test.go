package export

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/pdf-reconciler/internal/stage"
)

func sampleDocument() stage.Document {
	return stage.Document{
		"metadata": map[string]any{"document_type": "invoice"},
		"key_value_pairs": map[string]any{
			"Invoice Number": "42",
			"Total":          "199.00",
		},
		"text_sections": map[string]any{
			"Notes": "net 30",
		},
		"tables": []any{
			map[string]any{
				"table_title": "Line Items",
				"headers":     []any{"Item", "Qty", "Price"},
				"rows": []any{
					[]any{"Widget", "2", "99.50"},
					[]any{"Gadget", "1", "0.00"},
				},
			},
		},
	}
}

func TestBuildReportWritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir, nil)

	ref, err := b.BuildReport(context.Background(), "task-1", sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "task-1_report.xlsx"), ref)

	f, err := excelize.OpenFile(ref)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Text Sections")
	assert.Contains(t, sheets, "Line_Items")
	assert.NotContains(t, sheets, "Sheet1")

	// Summary rows are sorted by field name; metadata keys carry a prefix.
	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Field", cell("Summary", "A1"))
	assert.Equal(t, "Value", cell("Summary", "B1"))
	assert.Equal(t, "Invoice Number", cell("Summary", "A2"))
	assert.Equal(t, "42", cell("Summary", "B2"))
	assert.Equal(t, "Total", cell("Summary", "A3"))
	assert.Equal(t, "meta_document_type", cell("Summary", "A4"))
	assert.Equal(t, "invoice", cell("Summary", "B4"))

	assert.Equal(t, "Notes", cell("Text Sections", "A2"))
	assert.Equal(t, "net 30", cell("Text Sections", "B2"))

	assert.Equal(t, "Item", cell("Line_Items", "A1"))
	assert.Equal(t, "Price", cell("Line_Items", "C1"))
	assert.Equal(t, "Widget", cell("Line_Items", "A2"))
	assert.Equal(t, "Gadget", cell("Line_Items", "A3"))
	assert.Equal(t, "0.00", cell("Line_Items", "C3"))
}

func TestBuildReportEmptyDocumentGetsInfoSheet(t *testing.T) {
	b := NewBuilder(t.TempDir(), nil)

	ref, err := b.BuildReport(context.Background(), "task-2", stage.Document{})
	require.NoError(t, err)

	f, err := excelize.OpenFile(ref)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Contains(t, f.GetSheetList(), "Info")
}

func TestBuildReportSkipsEmptyTables(t *testing.T) {
	b := NewBuilder(t.TempDir(), nil)

	doc := stage.Document{
		"key_value_pairs": map[string]any{"k": "v"},
		"tables": []any{
			map[string]any{"table_title": "Empty", "headers": []any{"A"}, "rows": []any{}},
		},
	}
	ref, err := b.BuildReport(context.Background(), "task-3", doc)
	require.NoError(t, err)

	f, err := excelize.OpenFile(ref)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.NotContains(t, f.GetSheetList(), "Empty")
	assert.Contains(t, f.GetSheetList(), "Summary")
}

func TestBuildReportKeepsCollidingTablesApart(t *testing.T) {
	b := NewBuilder(t.TempDir(), nil)

	// Both titles sanitize to "Line_Items"; each table must still land on
	// its own sheet.
	doc := stage.Document{
		"tables": []any{
			map[string]any{
				"table_title": "Line Items",
				"headers":     []any{"Item"},
				"rows":        []any{[]any{"Widget"}},
			},
			map[string]any{
				"table_title": "Line/Items",
				"headers":     []any{"Item"},
				"rows":        []any{[]any{"Gadget"}},
			},
		},
	}
	ref, err := b.BuildReport(context.Background(), "task-6", doc)
	require.NoError(t, err)

	f, err := excelize.OpenFile(ref)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Contains(t, f.GetSheetList(), "Line_Items")
	assert.Contains(t, f.GetSheetList(), "Line_Items_2")

	first, err := f.GetCellValue("Line_Items", "A2")
	require.NoError(t, err)
	second, err := f.GetCellValue("Line_Items_2", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Widget", first)
	assert.Equal(t, "Gadget", second)
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "Line_Items", uniqueSheetName("Line_Items", used))
	assert.Equal(t, "Line_Items_2", uniqueSheetName("Line_Items", used))
	assert.Equal(t, "Line_Items_3", uniqueSheetName("Line_Items", used))

	long := safeSheetName("a very long table title that exceeds the sheet limit")
	require.Len(t, long, 31)
	assert.Equal(t, long, uniqueSheetName(long, used))
	deduped := uniqueSheetName(long, used)
	assert.Len(t, deduped, 31)
	assert.Equal(t, long[:29]+"_2", deduped)
}

func TestBuildReportNilDocument(t *testing.T) {
	b := NewBuilder(t.TempDir(), nil)
	_, err := b.BuildReport(context.Background(), "task-4", nil)
	require.Error(t, err)
	var se *stage.Error
	assert.ErrorAs(t, err, &se)
}

func TestBuildReportHonorsContext(t *testing.T) {
	b := NewBuilder(t.TempDir(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.BuildReport(ctx, "task-5", sampleDocument())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSafeSheetName(t *testing.T) {
	assert.Equal(t, "Line_Items", safeSheetName("Line Items"))
	assert.Equal(t, "Q3_Totals___EU_", safeSheetName("Q3 Totals / EU!"))
	assert.Equal(t, "Table", safeSheetName(""))
	assert.Len(t, safeSheetName("a very long table title that exceeds the sheet limit"), 31)
}
