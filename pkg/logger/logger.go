package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// До Init() логгеры — no-op, чтобы юнит-тесты не требовали файлов.
var (
	InfoLogger  = zap.NewNop()
	FatalLogger = zap.NewNop()
)

var serviceName = "default"

func SetServiceName(newName string) string {
	oldName := serviceName
	serviceName = newName

	return oldName
}

// Init собирает логгер с двумя файлами: trade.log (info и выше)
// и error.log (error и выше), плюс stdout.
func Init(tradeFile, errorFile string) error {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	trade, err := os.OpenFile(tradeFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", tradeFile, err)
	}
	errf, err := os.OpenFile(errorFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", errorFile, err)
	}

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zap.InfoLevel),
		zapcore.NewCore(enc, zapcore.AddSync(trade), zap.InfoLevel),
		zapcore.NewCore(enc, zapcore.AddSync(errf), zap.ErrorLevel),
	)

	l := zap.New(core)
	InfoLogger = l
	FatalLogger = l

	return nil
}

func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	InfoLogger.With(
		zap.String("service", serviceName),
	).Info(msg)
}

func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	InfoLogger.With(
		zap.String("service", serviceName),
	).Error(msg)
}

func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	FatalLogger.With(
		zap.String("service", serviceName),
	).Fatal(msg)
}
