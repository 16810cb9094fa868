// Package config loads the remote-API settings for one invocation. Values
// come from environment variables, with an optional YAML config file as a
// fallback for anything the environment does not set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the providers need. Missing keys are not validated
// here; an absent key surfaces later as an authentication failure from the
// remote API.
type Config struct {
	GroqAPIKey      string
	GroqEndpoint    string
	GroqModel       string
	AnthropicAPIKey string
}

// Load reads configuration once at startup. Environment variables win over
// config-file values. The GPT-4 path is configured by the OpenAI SDK's own
// OPENAI_API_KEY discovery and needs nothing here.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	_ = v.BindEnv("groq-api-key", "GROQ_API_KEY")
	_ = v.BindEnv("groq-endpoint", "GROQ_ENDPOINT")
	_ = v.BindEnv("groq-model", "GROQ_MODEL")
	_ = v.BindEnv("anthropic-api-key", "ANTHROPIC_API_KEY")

	if path, err := defaultFilePath(); err == nil {
		if err := readFile(v, path); err != nil {
			return nil, err
		}
	}

	return &Config{
		GroqAPIKey:      v.GetString("groq-api-key"),
		GroqEndpoint:    v.GetString("groq-endpoint"),
		GroqModel:       v.GetString("groq-model"),
		AnthropicAPIKey: v.GetString("anthropic-api-key"),
	}, nil
}

// defaultFilePath returns ~/.config/llmpipe/config.yml.
func defaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "llmpipe", "config.yml"), nil
}

// readFile merges the config file at path into v, expanding ${env://VAR}
// placeholders first. A missing file is not an error.
func readFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	content := string(data)
	if HasEnvVars(content) {
		content, err = SubstituteEnvVars(content)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := v.ReadConfig(strings.NewReader(content)); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}
