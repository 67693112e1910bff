package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"codeberg.org/mutker/ideapadctl/internal/errors"
	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel maps a configured level name to a LogLevel.
func ParseLevel(name string) (LogLevel, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return WarnLevel, false
	}
}

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init configures the package logger. Output goes to stderr so stdout
// stays reserved for command output.
func Init(level LogLevel, isService bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	if isService {
		output.TimeFormat = ""
		output.FormatTimestamp = func(_ interface{}) string {
			return ""
		}
	}

	log = zerolog.New(output).With().Timestamp().Logger()

	SetLogLevel(level)
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// IsService checks if the application is running as a service
func IsService() bool {
	if _, err := os.Stdin.Stat(); err != nil {
		return true
	}
	if os.Getenv("SERVICE_NAME") != "" || os.Getenv("INVOCATION_ID") != "" {
		return true
	}

	return os.Getppid() == 1
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// ErrorWithCode logs an error message with its error code, if any
func ErrorWithCode(err error) *LogEvent {
	return withCode(log.Error(), err)
}

func withCode(ev *zerolog.Event, err error) *LogEvent {
	if code, ok := errors.CodeOf(err); ok {
		ev = ev.Str("error_code", string(code))
	}

	return &LogEvent{ev.Err(err)}
}

type instance struct {
	zl zerolog.Logger
}

// New returns a Logger writing plain JSON lines to w.
func New(w io.Writer) Logger {
	return &instance{zl: zerolog.New(w)}
}

// Default returns a Logger backed by the package logger.
func Default() Logger {
	return defaultLogger{}
}

func (l *instance) Debug() *LogEvent { return &LogEvent{l.zl.Debug()} }
func (l *instance) Info() *LogEvent  { return &LogEvent{l.zl.Info()} }
func (l *instance) Warn() *LogEvent  { return &LogEvent{l.zl.Warn()} }
func (l *instance) Error() *LogEvent { return &LogEvent{l.zl.Error()} }

func (l *instance) ErrorWithCode(err error) *LogEvent {
	return withCode(l.zl.Error(), err)
}

type defaultLogger struct{}

func (defaultLogger) Debug() *LogEvent                  { return Debug() }
func (defaultLogger) Info() *LogEvent                   { return Info() }
func (defaultLogger) Warn() *LogEvent                   { return Warn() }
func (defaultLogger) Error() *LogEvent                  { return Error() }
func (defaultLogger) ErrorWithCode(err error) *LogEvent { return ErrorWithCode(err) }
