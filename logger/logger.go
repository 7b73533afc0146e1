package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type LogrusLogger struct {
	internalLogger *logrus.Logger
}

func New() *LogrusLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	return &LogrusLogger{internalLogger: l}
}

// SetOutput redirects log output, e.g. to a log file.
func (l *LogrusLogger) SetOutput(w io.Writer) {
	l.internalLogger.SetOutput(w)
}

// SetDebug toggles between debug and info level.
func (l *LogrusLogger) SetDebug(debug bool) {
	if debug {
		l.internalLogger.SetLevel(logrus.DebugLevel)
	} else {
		l.internalLogger.SetLevel(logrus.InfoLevel)
	}
}

func (l *LogrusLogger) Info(msg string, args ...interface{}) {
	l.entry(args).Info(msg)
}

func (l *LogrusLogger) Debug(msg string, args ...interface{}) {
	l.entry(args).Debug(msg)
}

func (l *LogrusLogger) Warn(msg string, args ...interface{}) {
	l.entry(args).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, args ...interface{}) {
	l.entry(args).Error(msg)
}

// entry turns slog-style key/value pairs into logrus fields. A trailing key
// without a value is logged under "!BADKEY", as slog does.
func (l *LogrusLogger) entry(args []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			fields["!BADKEY"] = args[i]
			continue
		}
		if i+1 >= len(args) {
			fields["!BADKEY"] = key
			break
		}
		fields[key] = args[i+1]
	}
	return l.internalLogger.WithFields(fields)
}
