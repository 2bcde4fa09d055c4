package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "vetpost"
	AppVersion = "1.0.0"
)

// UserAgent is sent on outbound requests to the photo provider.
var UserAgent = AppName + "/" + AppVersion

// Text provider names accepted by VETPOST_TEXT_PROVIDER.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

// Environment variable names that hold credentials. They are referenced in
// error messages so operators know what to set.
const (
	EnvTextAPIKey        = "API_KEY"
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
	EnvUnsplashAccessKey = "UNSPLASH_ACCESS_KEY"
)

const (
	DefaultAddr            = ":8080"
	DefaultUpstreamTimeout = 30 * time.Second
	DefaultImageLimit      = 9
	DefaultUnsplashBaseURL = "https://api.unsplash.com"
)

var defaultModels = map[string]string{
	ProviderGemini:     "gemini-2.5-flash",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderAnthropic:  "claude-3-5-haiku-latest",
	ProviderCompatible: "",
}

// TextConfig configures the generative-text provider.
type TextConfig struct {
	Provider  string
	APIKey    string
	// APIKeyEnv is the variable the key was (or should be) read from.
	APIKeyEnv string
	Model     string
	BaseURL   string
	Split     bool
}

// StockConfig configures the stock photo provider.
type StockConfig struct {
	AccessKey string
	BaseURL   string
	ProxyURL  string
	Limit     int
}

type Config struct {
	Addr            string
	StaticDir       string
	LogLevel        string
	LogFormat       string
	Location        *time.Location
	UpstreamTimeout time.Duration
	Text            TextConfig
	Stock           StockConfig
}

// Load reads the configuration from the environment. Local .env files are
// applied first when present; variables already set in the process win.
func Load() Config {
	loadEnvFiles(".env", ".env.local")

	provider := strings.ToLower(getEnv("VETPOST_TEXT_PROVIDER", ProviderGemini))
	apiKey, apiKeyEnv := textAPIKey()

	model := getEnv("VETPOST_TEXT_MODEL", "")
	if model == "" {
		model = defaultModels[provider]
	}

	staticDir := getEnv("VETPOST_STATIC_DIR", "")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:            getEnv("VETPOST_ADDR", DefaultAddr),
		StaticDir:       filepath.Clean(staticDir),
		LogLevel:        getEnv("VETPOST_LOG_LEVEL", "info"),
		LogFormat:       getEnv("VETPOST_LOG_FORMAT", "text"),
		Location:        loadLocation(getEnv("VETPOST_TIMEZONE", "UTC")),
		UpstreamTimeout: getEnvDuration("VETPOST_UPSTREAM_TIMEOUT", DefaultUpstreamTimeout),
		Text: TextConfig{
			Provider:  provider,
			APIKey:    apiKey,
			APIKeyEnv: apiKeyEnv,
			Model:     model,
			BaseURL:   getEnv("VETPOST_TEXT_BASE_URL", ""),
			Split:     getEnvBool("VETPOST_SPLIT_PROMPTS", false),
		},
		Stock: StockConfig{
			AccessKey: strings.TrimSpace(os.Getenv(EnvUnsplashAccessKey)),
			BaseURL:   strings.TrimRight(getEnv("UNSPLASH_BASE_URL", DefaultUnsplashBaseURL), "/"),
			ProxyURL:  getEnv("VETPOST_PROXY_URL", ""),
			Limit:     getEnvInt("VETPOST_IMAGE_LIMIT", DefaultImageLimit),
		},
	}
}

// textAPIKey resolves the text credential. API_KEY takes precedence over
// GEMINI_API_KEY. When neither is set the name reported is API_KEY.
func textAPIKey() (string, string) {
	for _, name := range []string{EnvTextAPIKey, EnvGeminiAPIKey} {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return value, name
		}
	}
	return "", EnvTextAPIKey
}

func loadEnvFiles(files ...string) {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		// Load never overrides variables that are already set.
		_ = godotenv.Load(file)
	}
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
		"./dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
