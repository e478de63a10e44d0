package logging

import (
	"github.com/sirupsen/logrus"
)

var DefaultLogger = initDefaultLogger()

func initDefaultLogger() *logrus.Logger {
	opts := defaultLogOpts()
	logger := logrus.New()
	logger.SetLevel(opts.level)
	logger.SetOutput(opts.output.Writer())
	logger.SetFormatter(opts.format.LogrusFormat())
	return logger
}

func SetLogLevel(logLevel logrus.Level) {
	DefaultLogger.SetLevel(logLevel)
}

func SetLogFormat(format LogFormat) {
	DefaultLogger.SetFormatter(format.LogrusFormat())
}

func SetLogOutput(output LogOutput) {
	DefaultLogger.SetOutput(output.Writer())
}

func SetupLogging(logOpts ...LogOption) {
	opts := defaultLogOpts()
	for _, opt := range logOpts {
		opt(opts)
	}

	SetLogFormat(opts.format)
	SetLogOutput(opts.output)
	SetLogLevel(opts.level)

	// The report owns stdout; keep the global logrus logger quiet.
	logrus.SetLevel(logrus.PanicLevel)
}
