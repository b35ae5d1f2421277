package config

import (
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	APIURL          string
	RequestTimeout  time.Duration
	DisplayTimezone string
	Location        *time.Location
	LogLevel        string
	LogFile         string
	Stub            StubConfig
}

// StubConfig drives the local search endpoint used for development.
type StubConfig struct {
	Listen  string
	Delay   time.Duration
	Shape   string
	Fixture string
}

const (
	ShapeObject = "object"
	ShapeList   = "list"
)

const DefaultRequestTimeout = 10 * time.Second

// Load reads defaults, an optional config file, SKYFINDER_* env vars and
// finally any flags that were explicitly set, in increasing priority.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_url", "http://localhost:8080/flights/search")
	v.SetDefault("request_timeout", DefaultRequestTimeout.String())
	v.SetDefault("display_timezone", "UTC")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("stub.listen", ":8080")
	v.SetDefault("stub.delay", "0s")
	v.SetDefault("stub.shape", ShapeObject)
	v.SetDefault("stub.fixture", "")

	v.SetEnvPrefix("skyfinder")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %q", path)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/skyfinder")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	return fromViper(v)
}

// flag names use dashes, config keys use underscores
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if strings.HasPrefix(key, "stub_") {
			key = "stub." + strings.TrimPrefix(key, "stub_")
		}
		err = v.BindPFlag(key, f)
	})
	return errors.Wrap(err, "bind flags")
}

func fromViper(v *viper.Viper) (*Config, error) {
	apiURL := strings.TrimSpace(v.GetString("api_url"))
	if apiURL == "" {
		return nil, errors.New("api_url must not be empty")
	}

	to, err := time.ParseDuration(v.GetString("request_timeout"))
	if err != nil {
		return nil, errors.Wrap(err, "bad request_timeout")
	}
	if to <= 0 {
		return nil, errors.Errorf("request_timeout must be positive, got %s", to)
	}

	delay, err := time.ParseDuration(v.GetString("stub.delay"))
	if err != nil {
		return nil, errors.Wrap(err, "bad stub.delay")
	}

	tz := v.GetString("display_timezone")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.Wrapf(err, "bad display_timezone %q", tz)
	}

	shape := strings.ToLower(v.GetString("stub.shape"))
	if shape != ShapeObject && shape != ShapeList {
		return nil, errors.Errorf("stub.shape must be %q or %q, got %q", ShapeObject, ShapeList, shape)
	}

	return &Config{
		APIURL:          apiURL,
		RequestTimeout:  to,
		DisplayTimezone: tz,
		Location:        loc,
		LogLevel:        v.GetString("log_level"),
		LogFile:         v.GetString("log_file"),
		Stub: StubConfig{
			Listen:  v.GetString("stub.listen"),
			Delay:   delay,
			Shape:   shape,
			Fixture: v.GetString("stub.fixture"),
		},
	}, nil
}
