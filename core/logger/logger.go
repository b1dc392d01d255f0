package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

type zapLogger struct {
	mu      sync.RWMutex
	verbose bool
	json    bool
	writer  io.Writer
	level   zap.AtomicLevel
	sugar   *zap.SugaredLogger
}

var globalLogger *zapLogger

func init() {
	globalLogger = &zapLogger{
		writer: os.Stdout,
		level:  zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
	globalLogger.rebuild()
}

// rebuild must be called with mu held for writing (or during init).
func (zl *zapLogger) rebuild() {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout("06-01-02 15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if zl.json {
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.ConsoleSeparator = " "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(zl.writer), zl.level)
	zl.sugar = zap.New(core).Sugar()
}

func SetVerbose(verbose bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.verbose = verbose
	if verbose {
		globalLogger.level.SetLevel(zapcore.DebugLevel)
	} else {
		globalLogger.level.SetLevel(zapcore.InfoLevel)
	}
}

func IsVerbose() bool {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.verbose
}

// SetJSONOutput switches between the colored console format and one JSON
// object per line.
func SetJSONOutput(enabled bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.json = enabled
	globalLogger.rebuild()
}

func SetWriterForAll(writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.writer = writer
	globalLogger.rebuild()
}

// AddWriterForAll tees every level to writer in addition to the current one.
func AddWriterForAll(writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.writer = io.MultiWriter(globalLogger.writer, writer)
	globalLogger.rebuild()
}

func SetErrorWriter() {
	SetWriterForAll(os.Stderr)
}

func Sync() {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	_ = globalLogger.sugar.Sync()
}

func (zl *zapLogger) log(level LogLevel, format string, args ...interface{}) {
	zl.mu.RLock()
	sugar := zl.sugar
	zl.mu.RUnlock()

	sugar.Logf(level.zapLevel(), format, args...)
}

func Debug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}

// Fatal logs and exits the process with status 1.
func Fatal(format string, args ...interface{}) {
	globalLogger.log(FATAL, format, args...)
}

// Infow logs msg with structured key/value pairs.
func Infow(msg string, keysAndValues ...interface{}) {
	globalLogger.mu.RLock()
	sugar := globalLogger.sugar
	globalLogger.mu.RUnlock()
	sugar.Infow(msg, keysAndValues...)
}

// Errorw logs msg at error level with structured key/value pairs.
func Errorw(msg string, keysAndValues ...interface{}) {
	globalLogger.mu.RLock()
	sugar := globalLogger.sugar
	globalLogger.mu.RUnlock()
	sugar.Errorw(msg, keysAndValues...)
}

func GetLogFromLevel(level LogLevel) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		globalLogger.log(level, format, args...)
	}
}
