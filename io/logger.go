package snapio

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatSymbols LogFormat = iota // ● ◆ ✓ ▲ ✗
	LogFormatTagged                   // [INFO] [SUCCESS] [WARN] [ERROR] [DEBUG]
	LogFormatPlain                    // No prefix
)

// Logger writes leveled, optionally colored messages
type Logger struct {
	io           *IOManager
	format       LogFormat
	prefixes     map[LogLevel]string
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	now          func() time.Time
}

// NewLogger creates a new logger bound to the given IOManager
func NewLogger(m *IOManager) *Logger {
	return &Logger{
		io:           m,
		format:       LogFormatSymbols,
		prefixes:     defaultSymbolPrefixes(),
		minLevel:     LevelInfo,
		errorsStderr: true,
		timeFormat:   "15:04:05",
		now:          time.Now,
	}
}

// defaultSymbolPrefixes returns Unicode symbol prefixes (no emoji)
func defaultSymbolPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "●",
		LevelInfo:    "◆",
		LevelSuccess: "✓",
		LevelWarning: "▲",
		LevelError:   "✗",
	}
}

// defaultTaggedPrefixes returns bracketed tag prefixes
func defaultTaggedPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelSuccess: "[SUCCESS]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	}
}

// levelColors are ANSI palette indexes per level
var levelColors = map[LogLevel]lipgloss.Color{
	LevelDebug:   "5",
	LevelInfo:    "4",
	LevelSuccess: "2",
	LevelWarning: "3",
	LevelError:   "1",
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	switch format {
	case LogFormatSymbols:
		l.prefixes = defaultSymbolPrefixes()
	case LogFormatTagged:
		l.prefixes = defaultTaggedPrefixes()
	case LogFormatPlain:
		l.prefixes = make(map[LogLevel]string)
	}
	return l
}

// WithLevel drops messages below level
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// SetPrefix sets a custom prefix for a specific log level
func (l *Logger) SetPrefix(level LogLevel, prefix string) *Logger {
	if l.prefixes == nil {
		l.prefixes = make(map[LogLevel]string)
	}
	l.prefixes[level] = prefix
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time format (Go time format string)
func (l *Logger) WithTimeFormat(format string) *Logger {
	l.timeFormat = format
	return l
}

// ErrorsToStderr controls whether errors and warnings go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	writer := l.selectWriter(level)
	fmt.Fprintln(writer, l.formatMessage(writer, level, fmt.Sprintf(format, args...)))
}

// formatMessage renders prefix, timestamp and message; only the prefix is
// colored so the message text stays greppable
func (l *Logger) formatMessage(w io.Writer, level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var parts []string
	if prefix := l.prefixes[level]; prefix != "" {
		style := l.io.renderer(w).NewStyle().Foreground(levelColors[level])
		parts = append(parts, style.Render(prefix))
	}
	if l.withTime {
		parts = append(parts, l.now().Format(l.timeFormat))
	}
	parts = append(parts, msg)
	return strings.Join(parts, " ")
}

// selectWriter chooses stdout or stderr based on log level and configuration
func (l *Logger) selectWriter(level LogLevel) io.Writer {
	if l.errorsStderr && (level == LevelError || level == LevelWarning) {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Success logs a success message
func (l *Logger) Success(format string, args ...any) {
	l.Log(LevelSuccess, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, format, args...)
}

// Failure logs err at error level followed by an optional hint such as
// a "did you mean" suggestion. A nil err is ignored.
func (l *Logger) Failure(err error, suggestion string) {
	if err == nil {
		return
	}
	l.Error("%s", err.Error())
	if suggestion != "" {
		fmt.Fprintf(l.selectWriter(LevelError), "  Did you mean '%s'?\n", suggestion)
	}
}
