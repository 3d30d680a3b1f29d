package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Analysis provider identifiers
const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderREST     = "rest"
)

type Config struct {
	ProjectDir string `json:"project_dir"`
	ExportDir  string `json:"export_dir"`

	Provider   string `json:"provider"`
	Model      string `json:"model"`
	BackendURL string `json:"backend_url"`

	// AI model API keys
	OpenAIAPIKey   string `json:"openai_api_key"`
	DeepSeekAPIKey string `json:"deepseek_api_key"`

	// Self-hosted analyzer endpoint
	AnalysisEndpoint string `json:"analysis_endpoint"`
	AnalysisToken    string `json:"analysis_token"`

	UserAgent         string `json:"user_agent"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	MaxTokens         int    `json:"max_tokens"`

	Debug bool `json:"debug"`

	// Eino Debug configuration
	EinoDebugEnabled bool `json:"eino_debug_enabled"`
	EinoDebugPort    int  `json:"eino_debug_port"`
}

func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()
	cfg := DefaultConfigWithRoot(currentDir)

	// Load environment variables from .env file
	_ = godotenv.Load()

	// Override with environment variables if they exist
	cfg.loadFromEnv()

	return cfg
}

// DefaultConfigWithRoot returns the defaults rooted at dir, without any
// environment overrides applied.
func DefaultConfigWithRoot(dir string) *Config {
	return &Config{
		ProjectDir: dir,
		ExportDir:  filepath.Join(dir, "exports"),

		Provider:   ProviderDeepSeek,
		Model:      "deepseek-chat",
		BackendURL: "",

		UserAgent:         "PulseGo/1.0",
		RequestTimeoutSec: 60,
		MaxTokens:         8192,

		Debug: false,

		// Eino Debug defaults
		EinoDebugEnabled: false,
		EinoDebugPort:    52538,
	}
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("PULSEGO_PROJECT_DIR"); val != "" {
		c.ProjectDir = val
	}
	if val := os.Getenv("PULSEGO_EXPORT_DIR"); val != "" {
		c.ExportDir = val
	}

	if val := os.Getenv("PULSEGO_PROVIDER"); val != "" {
		c.Provider = val
	}
	if val := os.Getenv("PULSEGO_MODEL"); val != "" {
		c.Model = val
	}
	if val := os.Getenv("BACKEND_URL"); val != "" {
		c.BackendURL = val
	}

	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.OpenAIAPIKey = val
	}
	if val := os.Getenv("DEEPSEEK_API_KEY"); val != "" {
		c.DeepSeekAPIKey = val
	}

	if val := os.Getenv("PULSEGO_ANALYSIS_ENDPOINT"); val != "" {
		c.AnalysisEndpoint = val
	}
	if val := os.Getenv("PULSEGO_ANALYSIS_TOKEN"); val != "" {
		c.AnalysisToken = val
	}

	if val := os.Getenv("PULSEGO_USER_AGENT"); val != "" {
		c.UserAgent = val
	}
	if val := os.Getenv("PULSEGO_REQUEST_TIMEOUT"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.RequestTimeoutSec = v
		}
	}
	if val := os.Getenv("PULSEGO_MAX_TOKENS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.MaxTokens = v
		}
	}

	if val := os.Getenv("PULSEGO_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}

	if val := os.Getenv("EINO_DEBUG_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.EinoDebugEnabled = enabled
		}
	}
	if val := os.Getenv("EINO_DEBUG_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.EinoDebugPort = port
		}
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderDeepSeek, ProviderREST:
	default:
		return fmt.Errorf("unknown provider %q (want %s, %s, or %s)",
			c.Provider, ProviderOpenAI, ProviderDeepSeek, ProviderREST)
	}
	if c.RequestTimeoutSec <= 0 {
		return fmt.Errorf("request timeout must be positive, got %d", c.RequestTimeoutSec)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.EinoDebugEnabled && (c.EinoDebugPort < 1 || c.EinoDebugPort > 65535) {
		return fmt.Errorf("eino debug port out of range: %d", c.EinoDebugPort)
	}
	return nil
}

// ValidateProviderCredentials checks that the selected provider has the
// credentials it needs to make requests.
func (c *Config) ValidateProviderCredentials() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("openai provider selected but OPENAI_API_KEY is not set")
		}
	case ProviderDeepSeek:
		if c.DeepSeekAPIKey == "" {
			return fmt.Errorf("deepseek provider selected but DEEPSEEK_API_KEY is not set")
		}
	case ProviderREST:
		if c.AnalysisEndpoint == "" {
			return fmt.Errorf("rest provider selected but no analysis endpoint configured")
		}
	}
	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{c.ProjectDir, c.ExportDir}
	for _, dir := range dirs {
		path := strings.TrimSpace(dir)
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}
	}
	return nil
}

func loadConfigFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
