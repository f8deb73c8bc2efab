// Package log constructs the zap logger every component receives
// through constructor injection — never a package-level global.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds a production zap logger named service, logging at
// minLevel and above.
func NewZapLogger(service string, minLevel zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(minLevel)
	cfg.InitialFields = map[string]interface{}{"service": service}

	logger, err := cfg.Build()
	if err != nil {
		panic("build zap logger: " + err.Error())
	}
	return logger.Sugar()
}
