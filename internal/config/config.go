package config

import (
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/ideapadctl/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = LogLevelWarning
	DefaultBroker   = "pkexec"
	DefaultFormat   = FormatText

	configName       = "ideapadctl"
	configType       = "toml"
	defaultEnvPrefix = "IDEAPADCTL"
)

// Config holds the settings of the unprivileged ideapadctl command. The
// privileged writer never reads it.
type Config struct {
	LogLevel LogLevel `mapstructure:"log_level"`
	Broker   string   `mapstructure:"broker"`
	Format   Format   `mapstructure:"format"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-level": "log_level",
	"broker":    "broker",
	"format":    "format",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to configuration file")
	fs.String("log-level", string(DefaultLogLevel), "Log level (debug, info, warning, error)")
	fs.String("broker", DefaultBroker, "Privilege escalation command used for writes")
	fs.StringP("format", "o", string(DefaultFormat), "Output format (text, json)")
}

func defaultSearchPaths() []string {
	paths := []string{"/etc"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, configName))
	}

	return paths
}

// Load merges defaults, the configuration file, IDEAPADCTL_* environment
// variables and flags, in increasing order of precedence.
func Load(flags *pflag.FlagSet, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{
		envPrefix:   defaultEnvPrefix,
		searchPaths: defaultSearchPaths(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("broker", DefaultBroker)
	v.SetDefault("format", string(DefaultFormat))

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	path := configPath(o, flags)
	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		for _, dir := range o.searchPaths {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
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

// configPath picks an explicit file from the option, --config or the
// <PREFIX>_CONFIG variable. Empty means search.
func configPath(o *options, flags *pflag.FlagSet) string {
	if o.configPath != "" {
		return o.configPath
	}

	if flags != nil {
		if path, err := flags.GetString("config"); err == nil && path != "" {
			return path
		}
	}

	return os.Getenv(o.envPrefix + "_CONFIG")
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	errFactory := errors.New()

	c.LogLevel = LogLevel(strings.ToLower(string(c.LogLevel)))
	if !c.LogLevel.IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, string(c.LogLevel))
	}

	c.Format = Format(strings.ToLower(string(c.Format)))
	if !c.Format.IsValid() {
		return errFactory.WithData(errors.ErrInvalidFormat, string(c.Format))
	}

	if strings.TrimSpace(c.Broker) == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "broker must not be empty")
	}

	return nil
}
