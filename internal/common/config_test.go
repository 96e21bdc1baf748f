package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Empty values read as unset.
	for _, key := range []string{"GRPC_ADDR", "OCR_TIMEOUT", "REPORT_TIMEOUT", "PDFTOTEXT_BIN", "TESSERACT_LANG", "TESSERACT_PSM", "ARCHIVE_DRIVER"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, 2*time.Minute, cfg.Stages.OCRTimeout)
	assert.Equal(t, 30*time.Second, cfg.Stages.ReportTimeout)
	assert.Equal(t, "pdftotext", cfg.OCR.Pdftotext)
	assert.Equal(t, "eng", cfg.OCR.TesseractLang)
	assert.Equal(t, 0, cfg.OCR.PSM)
	assert.Equal(t, "sqlite", cfg.Archive.Driver)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OCR_TIMEOUT", "5s")
	t.Setenv("TESSERACT_PSM", "6")
	t.Setenv("OPENAI_TEMPERATURE", "0.5")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Second, cfg.Stages.OCRTimeout)
	assert.Equal(t, 6, cfg.OCR.PSM)
	assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
}

func TestLoadConfigIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("OCR_TIMEOUT", "not-a-duration")
	t.Setenv("TESSERACT_PSM", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 2*time.Minute, cfg.Stages.OCRTimeout)
	assert.Equal(t, 0, cfg.OCR.PSM)
}

func TestValidate(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Archive.DSN = "archive.db"
	cfg.Archive.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg.Archive.Driver = "postgres"
	assert.NoError(t, cfg.Validate())

	cfg.LLM.APIKey = ""
	assert.Error(t, cfg.Validate())
}
