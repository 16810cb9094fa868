package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadFromEnvironment(t *testing.T) {
	// Point home at an empty directory so a real user config cannot leak in.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("GROQ_ENDPOINT", "https://api.groq.com/openai/v1")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.GroqAPIKey != "gsk-test" {
		t.Errorf("GroqAPIKey = %q, want %q", cfg.GroqAPIKey, "gsk-test")
	}
	if cfg.GroqEndpoint != "https://api.groq.com/openai/v1" {
		t.Errorf("GroqEndpoint = %q, want %q", cfg.GroqEndpoint, "https://api.groq.com/openai/v1")
	}
	if cfg.GroqModel != "llama-3.3-70b-versatile" {
		t.Errorf("GroqModel = %q, want %q", cfg.GroqModel, "llama-3.3-70b-versatile")
	}
	if cfg.AnthropicAPIKey != "sk-ant-test" {
		t.Errorf("AnthropicAPIKey = %q, want %q", cfg.AnthropicAPIKey, "sk-ant-test")
	}
}

func TestReadFile(t *testing.T) {
	t.Run("file values and substitution", func(t *testing.T) {
		t.Setenv("LLMPIPE_TEST_FILE_KEY", "gsk-from-env")

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yml")
		content := "groq-api-key: ${env://LLMPIPE_TEST_FILE_KEY}\ngroq-model: mixtral-8x7b-32768\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		v := viper.New()
		v.SetConfigType("yaml")
		if err := readFile(v, path); err != nil {
			t.Fatalf("readFile() error: %v", err)
		}

		if got := v.GetString("groq-api-key"); got != "gsk-from-env" {
			t.Errorf("groq-api-key = %q, want %q", got, "gsk-from-env")
		}
		if got := v.GetString("groq-model"); got != "mixtral-8x7b-32768" {
			t.Errorf("groq-model = %q, want %q", got, "mixtral-8x7b-32768")
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		if err := readFile(v, filepath.Join(t.TempDir(), "absent.yml")); err != nil {
			t.Fatalf("readFile() on missing file: %v", err)
		}
	})

	t.Run("environment wins over file", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		_ = v.BindEnv("groq-model", "GROQ_MODEL")
		t.Setenv("GROQ_MODEL", "from-env")

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yml")
		if err := os.WriteFile(path, []byte("groq-model: from-file\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := readFile(v, path); err != nil {
			t.Fatalf("readFile() error: %v", err)
		}

		if got := v.GetString("groq-model"); got != "from-env" {
			t.Errorf("groq-model = %q, want %q", got, "from-env")
		}
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yml")
		if err := os.WriteFile(path, []byte(":\n\t: bad"), 0o600); err != nil {
			t.Fatal(err)
		}

		v := viper.New()
		v.SetConfigType("yaml")
		if err := readFile(v, path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}
