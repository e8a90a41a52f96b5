package config

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
)

// NewLogger builds the console logger used by every component
func NewLogger(cfg LoggingConfig) arbor.ILogger {
	return arbor.NewLogger().WithConsoleWriter(models.WriterConfiguration{
		Type:             models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString(cfg.Level)
}
