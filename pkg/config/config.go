package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vietanhduong/symguess/pkg/cpu"
	"github.com/vietanhduong/symguess/pkg/guess"
	"github.com/vietanhduong/symguess/pkg/logging"
	"github.com/vietanhduong/symguess/pkg/report"
	"github.com/vietanhduong/symguess/pkg/syms"
)

const (
	EnvPrefix = "SYMGUESS"

	ConfigFlag    = "config"
	ColorFlag     = "color"
	WorkersFlag   = "workers"
	MatcherFlag   = "matcher"
	CacheSizeFlag = "cache-size"
	DemangleFlag  = "demangle"
	ToleranceFlag = "tolerance"
	AlignmentFlag = "alignment"
)

type Matcher string

const (
	MatcherIndex Matcher = "index"
	MatcherScan  Matcher = "scan"
)

type Config struct {
	Color     report.ColorMode
	Workers   int
	Matcher   Matcher
	CacheSize int
	Demangle  syms.DemangleType
	Tolerance uint64
	Alignment uint64
}

func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFlag, "", "Optional config `file` (yaml, toml or json). Flags and SYMGUESS_* environment variables take precedence.")
	fs.String(ColorFlag, string(report.ColorAuto), "Colorize the output. Must be one of 'auto', 'always' or 'never'.")
	fs.Int(WorkersFlag, 0, "Number of goroutines resolving symbols. 0 uses the number of online CPUs.")
	fs.String(MatcherFlag, string(MatcherIndex), "How names are looked up in the newer list. 'index' builds a hash index, 'scan' searches linearly.")
	fs.Int(CacheSizeFlag, 4096, "Size of the LRU cache in front of the 'scan' matcher. 0 disables the cache.")
	fs.String(DemangleFlag, string(syms.DemangleNone), "Demangle names in the report. Must be one of NONE, SIMPLIFIED, TEMPLATES or FULL.")
	fs.Uint64(ToleranceFlag, guess.DefaultTolerance, "Largest neighbor span difference, in bytes, that still produces a guess.")
	fs.Uint64(AlignmentFlag, guess.DefaultAlignment, "Function alignment of the newer binary, in bytes. Must be a power of two.")
	logging.RegisterFlags(fs)
}

// NewViper binds fs, the SYMGUESS_* environment and the optional config file.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("viper bind flags: %w", err)
	}
	if path := v.GetString(ConfigFlag); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("viper read config %s: %w", path, err)
		}
	}
	return v, nil
}

func Load(v *viper.Viper) (*Config, error) {
	color, err := report.ParseColorMode(v.GetString(ColorFlag))
	if err != nil {
		return nil, err
	}
	demangle, err := syms.ParseDemangleType(v.GetString(DemangleFlag))
	if err != nil {
		return nil, err
	}
	matcher := Matcher(strings.ToLower(strings.TrimSpace(v.GetString(MatcherFlag))))
	switch matcher {
	case MatcherIndex, MatcherScan:
	default:
		return nil, fmt.Errorf("unknown matcher %q", matcher)
	}

	cfg := &Config{
		Color:     color,
		Workers:   v.GetInt(WorkersFlag),
		Matcher:   matcher,
		CacheSize: v.GetInt(CacheSizeFlag),
		Demangle:  demangle,
		Tolerance: v.GetUint64(ToleranceFlag),
		Alignment: v.GetUint64(AlignmentFlag),
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid workers %d", cfg.Workers)
	}
	if cfg.Workers == 0 {
		cfg.Workers = cpu.NumOnline()
	}
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("invalid cache size %d", cfg.CacheSize)
	}
	return cfg, nil
}
