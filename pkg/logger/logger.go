package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pokercds/pokercds/internal/config"
)

// InitLogger builds the process-wide structured logger and installs it as
// the zap global, so every package logs through zap.L().
func InitLogger(conf *config.Config) error {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil {
		return fmt.Errorf("unsupported log lvl %q: %w", conf.LogLvl, err)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.Sampling = nil
	c.OutputPaths = []string{"stdout"}
	c.ErrorOutputPaths = []string{"stderr"}
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder

	logger, err := c.Build(zap.Fields(zap.String("app", "pokercds")))
	if err != nil {
		return fmt.Errorf("unable to create zap logger: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
