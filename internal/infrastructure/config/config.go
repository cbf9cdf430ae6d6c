package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/eslsoft/wordlist/internal/entity"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds all configuration for our application
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig holds wordlist output configuration
type OutputConfig struct {
	File string `mapstructure:"file"`
}

// LLMConfig holds enrichment configuration
type LLMConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Provider     string        `mapstructure:"provider"`
	APIKey       string        `mapstructure:"api_key"`
	APIBase      string        `mapstructure:"api_base"`
	Model        string        `mapstructure:"model"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the config file (when one is configured on viper),
// environment variables and bound flags.
func Load() (*Config, error) {
	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnv("llm.api_key", "LLM_API_KEY", "OPENAI_API_KEY")

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.normalize()
	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("output.file", "wordlist_5_letters.json")

	viper.SetDefault("llm.enabled", false)
	viper.SetDefault("llm.provider", ProviderOpenAI)
	viper.SetDefault("llm.api_key", "")
	viper.SetDefault("llm.api_base", "")
	viper.SetDefault("llm.model", "gpt-3.5-turbo")
	viper.SetDefault("llm.request_delay", time.Duration(0))

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func bindEnv(key string, envs ...string) {
	// BindEnv only fails without a key.
	_ = viper.BindEnv(append([]string{key}, envs...)...)
}

func (c *Config) normalize() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	c.LLM.APIBase = strings.TrimSpace(c.LLM.APIBase)
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	c.Output.File = strings.TrimSpace(c.Output.File)
	if c.LLM.RequestDelay < 0 {
		c.LLM.RequestDelay = 0
	}
}

// HasCredential reports whether an API key is configured.
func (c *Config) HasCredential() bool {
	return c.LLM.APIKey != ""
}

// Validate checks the cross-field constraints that make a run impossible.
func (c *Config) Validate() error {
	if !lo.Contains([]string{ProviderOpenAI, ProviderAnthropic}, c.LLM.Provider) {
		return fmt.Errorf("%w: %q", entity.ErrUnknownProvider, c.LLM.Provider)
	}
	if c.LLM.Enabled && !c.HasCredential() {
		return entity.ErrMissingAPIKey
	}
	return nil
}
