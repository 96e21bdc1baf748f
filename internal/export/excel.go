package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/stage"
)

// Builder implements stage.ReportBuilder: it renders a reconciled document
// into an XLSX workbook under the artifact directory and returns the written
// path as the report reference.
type Builder struct {
	artifactDir string
	logger      *slog.Logger
}

func NewBuilder(artifactDir string, logger *slog.Logger) *Builder {
	if artifactDir == "" {
		artifactDir = "./tmp"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{artifactDir: artifactDir, logger: logger}
}

// BuildReport writes <artifactDir>/<taskID>_report.xlsx with a Summary sheet
// (metadata + key-value pairs), an optional Text Sections sheet, and one
// sheet per extracted table.
func (b *Builder) BuildReport(ctx context.Context, taskID string, doc stage.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if doc == nil {
		return "", stage.NewError(constants.StageReport, "no reconciled document to render")
	}

	start := time.Now()
	if err := os.MkdirAll(b.artifactDir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			b.logger.Warn("export.workbook_close_error", "task_id", taskID, "error", err)
		}
	}()

	sheets := 0
	used := make(map[string]bool)

	// Sheet 1: metadata (prefixed) + key-value pairs, as Field/Value rows.
	summary := map[string]any{}
	if meta, ok := doc["metadata"].(map[string]any); ok {
		for k, v := range meta {
			summary["meta_"+k] = v
		}
	}
	if kv, ok := doc["key_value_pairs"].(map[string]any); ok {
		for k, v := range kv {
			summary[k] = v
		}
	}
	if len(summary) > 0 {
		if err := b.writePairsSheet(f, "Summary", "Field", "Value", summary); err != nil {
			return "", err
		}
		used["Summary"] = true
		sheets++
	}

	if texts, ok := doc["text_sections"].(map[string]any); ok && len(texts) > 0 {
		if err := b.writePairsSheet(f, "Text Sections", "Section Title", "Text", texts); err != nil {
			return "", err
		}
		used["Text Sections"] = true
		sheets++
	}

	if tables, ok := doc["tables"].([]any); ok {
		for i, raw := range tables {
			table, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if err := b.writeTableSheet(f, i, table, used); err != nil {
				b.logger.Warn("export.table_skipped", "task_id", taskID, "table", i, "error", err)
				continue
			}
			sheets++
		}
	}

	if sheets == 0 {
		if err := b.writePairsSheet(f, "Info", "Status", "", map[string]any{
			"No structured data extracted": "",
		}); err != nil {
			return "", err
		}
	}

	// Drop excelize's default sheet so the workbook opens on real content.
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx >= 0 {
		_ = f.DeleteSheet("Sheet1")
	}

	path := filepath.Join(b.artifactDir, fmt.Sprintf("%s_report.xlsx", taskID))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("write workbook: %w", err)
	}

	b.logger.Info("export.report_written",
		"task_id", taskID,
		"path", path,
		"sheets", sheets,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

// writePairsSheet writes a two-column sheet with a header row, rows sorted
// by key for a stable layout.
func (b *Builder) writePairsSheet(f *excelize.File, sheet, keyHeader, valHeader string, pairs map[string]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	_ = f.SetCellValue(sheet, "A1", keyHeader)
	_ = f.SetCellValue(sheet, "B1", valHeader)

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	row := 2
	for _, k := range keys {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, k)
		write(2, fmt.Sprintf("%v", pairs[k]))
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 60)
	return nil
}

func (b *Builder) writeTableSheet(f *excelize.File, index int, table map[string]any, used map[string]bool) error {
	headers, _ := table["headers"].([]any)
	rows, _ := table["rows"].([]any)
	if len(rows) == 0 {
		return fmt.Errorf("table %d has no rows", index+1)
	}

	title, _ := table["table_title"].(string)
	if title == "" {
		title = fmt.Sprintf("Table %d", index+1)
	}
	sheet := uniqueSheetName(safeSheetName(title), used)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, fmt.Sprintf("%v", h))
	}
	for r, raw := range rows {
		cells, ok := raw.([]any)
		if !ok {
			continue
		}
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			_ = f.SetCellValue(sheet, cell, fmt.Sprintf("%v", v))
		}
	}
	return nil
}

// uniqueSheetName suffixes a counter when two tables sanitize to the same
// sheet name, since excelize's NewSheet would silently reuse the existing
// sheet and the second table would overwrite the first. The suffixed name
// stays within the 31-character limit.
func uniqueSheetName(base string, used map[string]bool) string {
	name := base
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		name = base
		if len(name)+len(suffix) > 31 {
			name = name[:31-len(suffix)]
		}
		name += suffix
	}
	used[name] = true
	return name
}

// safeSheetName keeps only alphanumerics (everything else becomes "_") and
// respects the 31-character sheet name limit.
func safeSheetName(title string) string {
	var sb strings.Builder
	for _, r := range title {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	name := sb.String()
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" {
		name = "Table"
	}
	return name
}
