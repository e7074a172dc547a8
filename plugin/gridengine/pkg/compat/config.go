package compat

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the gridengine plugin's own config file. The file is optional;
// the translation then stays disabled unless an enable= argument or the
// --add-sge-env option turns it on.
type Config struct {
	Enabled bool `mapstructure:"enabled"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	setDefaultConfig(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("enabled", false)
}
