package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Board BoardConfig `mapstructure:"board"`
	UI    UIConfig    `mapstructure:"ui"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// File receives log output. Empty means stderr.
	File string `mapstructure:"file"`
}

// BoardConfig names the board used when a command gets none on the command line.
type BoardConfig struct {
	File string `mapstructure:"file"`
	Name string `mapstructure:"name"`
}

// UIConfig holds presentation settings of the interactive board.
type UIConfig struct {
	ArmedColor  string `mapstructure:"armed_color"`
	PairedColor string `mapstructure:"paired_color"`
	CursorColor string `mapstructure:"cursor_color"`
	ShowLabels  bool   `mapstructure:"show_labels"`
}

// EnvConfig is the variable that points at an explicit config file.
const EnvConfig = "QUIZMATCH_CONFIG"

// DefaultPath returns $HOME/.config/quiz-match/config.yaml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "quiz-match", "config.yaml")
}

// Load reads configuration from file and env. Env var overrides use prefix QUIZMATCH_.
// path, then QUIZMATCH_CONFIG, selects an explicit file which must exist;
// otherwise the default location is read if present.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("board.file", "")
	v.SetDefault("board.name", "")
	v.SetDefault("ui.armed_color", "205")
	v.SetDefault("ui.paired_color", "42")
	v.SetDefault("ui.cursor_color", "212")
	v.SetDefault("ui.show_labels", true)

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUIZMATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}
