package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type LogFormat string

const (
	LogFormatJson LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogOutput string

const (
	LogOutputStdout LogOutput = "stdout"
	LogOutputStderr LogOutput = "stderr"
)

type LogOptions struct {
	format LogFormat
	level  logrus.Level
	output LogOutput
}

type LogOption func(*LogOptions)

func WithJsonFormat() LogOption {
	return func(lo *LogOptions) { lo.format = LogFormatJson }
}

func WithTextFormat() LogOption {
	return func(lo *LogOptions) { lo.format = LogFormatText }
}

func WithLogFormat(format LogFormat) LogOption {
	if format == LogFormatJson {
		return WithJsonFormat()
	}
	// fallback option, in case the input format is invalid
	return WithTextFormat()
}

func WithLogLevel(level string) LogOption {
	return func(lo *LogOptions) { lo.level = parseLogLevel(level) }
}

func WithLogOutput(output LogOutput) LogOption {
	switch output {
	case LogOutputStdout, LogOutputStderr:
	default:
		output = LogOutputStderr
	}
	return func(lo *LogOptions) { lo.output = output }
}

// The report is written to stdout, so logs default to stderr.
func defaultLogOpts() *LogOptions {
	return &LogOptions{
		format: LogFormatText,
		level:  logrus.InfoLevel,
		output: LogOutputStderr,
	}
}

func (lf LogFormat) LogrusFormat() logrus.Formatter {
	switch lf {
	case LogFormatJson:
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	}
}

func (lo LogOutput) Writer() io.Writer {
	if lo == LogOutputStdout {
		return os.Stdout
	}
	return os.Stderr
}
