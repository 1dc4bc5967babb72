package shared

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func logDir() string {
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		return dir
	}
	return "logs"
}

func buildLumberjackSyncer(maxSize int, maxAge int, fileName string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir(), fileName),
		MaxSize:    maxSize, // megabytes before rotation
		MaxBackups: 7,
		MaxAge:     maxAge, // days to retain rotated files
		Compress:   false,
	}
}

// Logger is a thin zap wrapper that writes JSON lines to a rotating file and
// stdout, stamping every entry with the service name.
type Logger struct {
	FileName string
	MaxAge   int
	MaxSize  int
	AppName  string
	logger   *zap.Logger
}

func NewLogger(fileName string, maxAge int, maxSize int, appName string) *Logger {
	l := &Logger{
		FileName: fileName,
		MaxAge:   maxAge,
		MaxSize:  maxSize,
		AppName:  appName,
	}
	l.init()
	return l
}

func (l *Logger) init() {
	fileSyncer := zapcore.AddSync(buildLumberjackSyncer(l.MaxSize, l.MaxAge, l.FileName))
	stdoutSyncer := zapcore.AddSync(os.Stdout)
	combined := zapcore.NewMultiWriteSyncer(fileSyncer, stdoutSyncer)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), combined, zap.InfoLevel)
	l.logger = zap.New(core)
}

// Add new field to the logger fields (to head)
func unshift(fields []zap.Field, field zap.Field) []zap.Field {
	return append([]zap.Field{field}, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, unshift(fields, zap.String("service", l.AppName))...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.logger.Error(msg, unshift(fields, zap.String("service", l.AppName))...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, unshift(fields, zap.String("service", l.AppName))...)
}

func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.logger.Fatal(msg, unshift(fields, zap.String("service", l.AppName))...)
}
