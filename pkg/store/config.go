package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the database path from a .familynote config file or
// FAMILYNOTE_* environment variables, defaulting to ~/.familynote.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.familynote.db")
	viper.SetConfigName(".familynote") // .yaml is implicit
	viper.SetEnvPrefix("FAMILYNOTE")
	viper.AutomaticEnv()

	if override := os.Getenv("FAMILYNOTE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
