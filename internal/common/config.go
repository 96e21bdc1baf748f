package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Stages  StageConfig
	OCR     OCRConfig
	LLM     LLMConfig
	Export  ExportConfig
	Archive ArchiveConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StageConfig holds per-stage execution bounds for the orchestrator.
type StageConfig struct {
	OCRTimeout       time.Duration
	ExtractTimeout   time.Duration
	ReconcileTimeout time.Duration
	ReportTimeout    time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftotext     string
	Tesseract     string
	TesseractLang string
	PSM           int
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	Directive   string
}

// ExportConfig holds report artifact configuration
type ExportConfig struct {
	ArtifactDir string
}

// ArchiveConfig holds terminal-task archive configuration.
// Driver is "sqlite" or "postgres"; an empty DSN disables archiving.
type ArchiveConfig struct {
	Driver string
	DSN    string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Stages: StageConfig{
			OCRTimeout:       getEnvAsDuration("OCR_TIMEOUT", 2*time.Minute),
			ExtractTimeout:   getEnvAsDuration("EXTRACT_TIMEOUT", 2*time.Minute),
			ReconcileTimeout: getEnvAsDuration("RECONCILE_TIMEOUT", 2*time.Minute),
			ReportTimeout:    getEnvAsDuration("REPORT_TIMEOUT", 30*time.Second),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			PSM:           int(getEnvAsInt32("TESSERACT_PSM", 0)),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			Directive:   getEnv("EXTRACTION_DIRECTIVE", ""),
		},
		Export: ExportConfig{
			ArtifactDir: getEnv("ARTIFACT_DIR", "./tmp"),
		},
		Archive: ArchiveConfig{
			Driver: getEnv("ARCHIVE_DRIVER", "sqlite"),
			DSN:    getEnv("ARCHIVE_DSN", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Archive.DSN != "" && c.Archive.Driver != "sqlite" && c.Archive.Driver != "postgres" {
		return NewAppError("CONFIG_ERROR", "ARCHIVE_DRIVER must be sqlite or postgres", ErrInvalidInput)
	}
	return nil
}
