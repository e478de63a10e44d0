package logging

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	namespace  = "log"
	LevelFlag  = namespace + ".level"
	FormatFlag = namespace + ".format"
	OutputFlag = namespace + ".output"
)

func RegisterFlags(fs *pflag.FlagSet) {
	opts := defaultLogOpts()
	fs.String(LevelFlag, opts.level.String(), "Log level. Available options: panic, fatal, error, info, warn (or warning), debug and trace.")
	fs.String(FormatFlag, string(opts.format), "Log output format. Available options: text, json.")
	fs.String(OutputFlag, string(opts.output), "Log output stream. Available options: stderr, stdout.")
}

func SetupLoggingWithViper(v *viper.Viper) {
	SetupLogging(
		WithLogFormat(LogFormat(v.GetString(FormatFlag))),
		WithLogLevel(v.GetString(LevelFlag)),
		WithLogOutput(LogOutput(v.GetString(OutputFlag))),
	)
}
