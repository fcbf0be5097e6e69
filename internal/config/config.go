package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"kei-portfolio/internal/logger"
)

const (
	EnvPrefix     = "KEI_PORTFOLIO"
	ConfigFileEnv = EnvPrefix + "_CONFIG"
)

// Config holds runtime settings loaded from defaults, file, env and flags.
type Config struct {
	Log     LogConfig
	Window  WindowConfig
	Splash  SplashConfig
	Profile ProfileConfig
	Theme   ThemeConfig
}

type LogConfig struct {
	Level string
	JSON  bool
}

type WindowConfig struct {
	Width  float32
	Height float32
}

type SplashConfig struct {
	Greeting string
}

type ProfileConfig struct {
	Name     string
	IconPath string `mapstructure:"icon_path"`
	About    string
	Links    []string
}

type ThemeConfig struct {
	Variant string
}

// NewViper returns a viper instance with defaults, env binding and the config
// file location applied. path overrides KEI_PORTFOLIO_CONFIG when non-empty.
func NewViper(path string) *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 720)
	v.SetDefault("splash.greeting", "Hello!!")
	v.SetDefault("profile.name", "Kei")
	v.SetDefault("profile.icon_path", "")
	v.SetDefault("profile.about", "Mobile and desktop developer. I like building small, careful interfaces.")
	v.SetDefault("profile.links", []string{"github.com/kei", "kei.dev"})
	v.SetDefault("theme.variant", "light")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(dir + "/kei-portfolio")
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file if present and decodes v into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && v.ConfigFileUsed() != "" {
			return Config{}, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	switch c.Theme.Variant {
	case "light", "dark":
	default:
		return fmt.Errorf("theme.variant: unknown variant %q", c.Theme.Variant)
	}
	return nil
}
