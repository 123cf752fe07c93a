// Package logging builds the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pegsolitaire/pegsolitaire/internal/config"
)

// New builds a logger for cfg. Debug level uses the development console
// config; other levels use the production config. JSON forces JSON encoding.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	lvl, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}
	var zapCfg zap.Config
	if lvl == zapcore.DebugLevel {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapCfg.Sampling = nil
	}
	if cfg.JSON {
		zapCfg.Encoding = "json"
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

// Setup builds a logger for cfg and installs it as the zap global. The
// returned func restores the previous globals and flushes the logger.
func Setup(cfg config.LogConfig) (func(), error) {
	z, err := New(cfg)
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(z)
	return func() {
		_ = z.Sync()
		restore()
	}, nil
}
