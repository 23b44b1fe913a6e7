package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	Dir    string `mapstructure:"dir"`
}

type CorsConfig struct {
	Origins []string `mapstructure:"origins"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Cors   CorsConfig   `mapstructure:"cors"`
}

var vp *viper.Viper

func LoadConfig() (Config, error) {
	vp = viper.New()

	var config Config

	vp.SetConfigName("config")
	vp.SetConfigType("json")
	vp.AddConfigPath("config")

	vp.SetDefault("server.port", "8080")
	vp.SetDefault("store.driver", "file")
	vp.SetDefault("store.dir", "data")

	// a missing file is fine, the defaults cover it
	if err := vp.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	err := vp.Unmarshal(&config)
	if err != nil {
		return Config{}, err
	}

	return config, nil
}
