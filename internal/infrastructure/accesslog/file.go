package accesslog

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileSink appends entries as JSON lines through a dedicated zap core.
type FileSink struct {
	file   *os.File
	logger *zap.Logger
}

// OpenFile creates the parent directory if needed and opens path in append mode.
func OpenFile(path string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("access log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create access log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.CallerKey = zapcore.OmitKey
	encoderCfg.StacktraceKey = zapcore.OmitKey

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(file)),
		zapcore.DebugLevel,
	)

	return &FileSink{file: file, logger: zap.New(core)}, nil
}

func (s *FileSink) Record(entry Entry) error {
	if s == nil || s.logger == nil {
		return nil
	}
	level := zapcore.InfoLevel
	if entry.Level == LevelError {
		level = zapcore.ErrorLevel
	}

	if ce := s.logger.Check(level, entry.Message); ce != nil {
		ce.Time = entry.Timestamp
		ce.Write(
			zap.Any("req", entry.Request),
			zap.Any("res", entry.Response),
			zap.Duration("duration", entry.Duration),
		)
	}
	return nil
}

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	_ = s.logger.Sync()
	return s.file.Close()
}
