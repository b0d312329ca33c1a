package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/mutker/batstat/internal/errors"
	"codeberg.org/mutker/batstat/internal/pid"
)

const (
	DefaultLogLevel  = string(LogLevelWarning)
	DefaultOutput    = "battery.csv"
	DefaultHistoryDB = "/var/lib/batstat/history.db"

	defaultEnvPrefix  = "BATSTAT"
	defaultConfigName = "batstat"
	defaultConfigDir  = "/etc"
)

// Config holds the CLI's settings. The battery source path is fixed and
// deliberately not part of it.
type Config struct {
	Output    string `mapstructure:"output"`
	CSV       bool   `mapstructure:"csv"`
	Quiet     bool   `mapstructure:"quiet"`
	Color     bool   `mapstructure:"color"`
	LogLevel  string `mapstructure:"log_level"`
	History   bool   `mapstructure:"history"`
	HistoryDB string `mapstructure:"history_db"`
	LockFile  string `mapstructure:"lock_file"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"output":     "output",
	"csv":        "csv",
	"quiet":      "quiet",
	"color":      "color",
	"log-level":  "log_level",
	"history":    "history",
	"history-db": "history_db",
	"lock-file":  "lock_file",
}

// Load resolves the configuration from defaults, the TOML config file,
// environment variables and args, in increasing order of precedence.
func Load(args []string, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
	}

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configPath := o.configPath
	if configPath == "" {
		configPath, _ = flags.GetString("config")
	}
	if configPath == "" {
		configPath = os.Getenv(o.envPrefix + "_CONFIG")
	}
	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values Load cannot enforce through types alone.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.CSV && strings.TrimSpace(c.Output) == "" {
		return errFactory.New(errors.ErrInvalidOutput)
	}

	if c.History && strings.TrimSpace(c.HistoryDB) == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "history enabled without history_db")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("csv", true)
	v.SetDefault("quiet", false)
	v.SetDefault("color", true)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("history", false)
	v.SetDefault("history_db", DefaultHistoryDB)
	v.SetDefault("lock_file", pid.DefaultPath())
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("batstat", pflag.ContinueOnError)

	flags.StringP("output", "o", DefaultOutput, "CSV file to append the reading to")
	flags.Bool("csv", true, "Append the reading to the CSV file")
	flags.BoolP("quiet", "q", false, "Do not print the summary line")
	flags.Bool("color", true, "Colorize the charge state")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	flags.Bool("history", false, "Record the reading in the SQLite history database")
	flags.String("history-db", DefaultHistoryDB, "Path to the SQLite history database")
	flags.String("lock-file", pid.DefaultPath(), "PID file guarding the CSV append")
	flags.StringP("config", "c", "", "Path to a TOML config file")

	return flags
}

func readConfigFile(v *viper.Viper, path string) error {
	errFactory := errors.New()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}

		return nil
	}

	v.SetConfigName(defaultConfigName)
	v.SetConfigType("toml")
	v.AddConfigPath(defaultConfigDir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}
