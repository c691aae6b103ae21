package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the server's runtime configuration. Values come from defaults,
// an optional diggle.yaml in the working directory, and DIGGLE_* environment
// variables, later sources winning.
type Config struct {
	Addr     string `mapstructure:"addr"`
	LogLevel string `mapstructure:"log_level"`

	DB struct {
		// DSN empty means no database: slots and runs stay in memory.
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`

	Game struct {
		TickRate float64 `mapstructure:"tick_rate"`
	} `mapstructure:"game"`

	World struct {
		Width      int   `mapstructure:"width"`
		Height     int   `mapstructure:"height"`
		SurfaceRow int   `mapstructure:"surface_row"`
		Seed       int64 `mapstructure:"seed"`
	} `mapstructure:"world"`
}

func Load(configDir string) (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")

	v.SetDefault("db.dsn", "")

	v.SetDefault("game.tick_rate", 20.0)

	v.SetDefault("world.width", 40)
	v.SetDefault("world.height", 120)
	v.SetDefault("world.surface_row", 4)
	v.SetDefault("world.seed", 0)

	v.SetConfigName("diggle")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("DIGGLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Running with defaults and env only is the normal demo setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
