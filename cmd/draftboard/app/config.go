package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/draftboard/internal/config"
	"github.com/agentstation/draftboard/pkg/constants"
	"github.com/agentstation/draftboard/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Locations
	RankingsDir string
	OutputDir   string
	CacheDir    string
	AliasesFile string
	MetricsFile string

	// Upstreams
	ADPBaseURL        string
	SportsDataBaseURL string
	SportsDataKey     string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.draftboard.yaml or ./.draftboard.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file path.
func LoadConfigFile(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Each load starts from a clean global instance
	viper.Reset()
	v := viper.GetViper()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if err := v.BindEnv("sportsdata_key", constants.SportsDataKeyEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", constants.SportsDataKeyEnv, err)
	}

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	}

	cfg := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		RankingsDir: v.GetString("rankings_dir"),
		OutputDir:   v.GetString("output_dir"),
		CacheDir:    v.GetString("cache_dir"),
		AliasesFile: v.GetString("aliases_file"),
		MetricsFile: v.GetString("metrics_file"),

		ADPBaseURL:        v.GetString("adp_base_url"),
		SportsDataBaseURL: v.GetString("sportsdata_base_url"),
		SportsDataKey:     config.SportsDataKey(),

		// An empty level lets -v/-q apply; see determineLogLevel.
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: config.GetStringOr("LOG_FORMAT", "auto"),
		LogOutput: config.GetStringOr("LOG_OUTPUT", "stderr"),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("rankings_dir", constants.DefaultRankingsDir)
	v.SetDefault("output_dir", constants.DefaultOutputDir)
	v.SetDefault("cache_dir", constants.DefaultCacheDir)
	v.SetDefault("adp_base_url", constants.ADPBaseURL)
	v.SetDefault("sportsdata_base_url", constants.SportsDataBaseURL)
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env; godotenv never overrides the real environment
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
