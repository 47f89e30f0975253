package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/vollab/config"
	ConfigFileName    = "vollab.yml"
)

// ValidSmoothers is the list of valid volatility smoother names
var ValidSmoothers = []string{"sabr", "svi", "ssvi"}

// Config holds all vollab configuration settings
type Config struct {
	// DataDir is the directory holding option and rate CSV datasets
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// Tickers restricts data loading to these underlyings
	Tickers []string `yaml:"tickers" json:"tickers"`

	// Smoother selects the volatility smile model for surface fitting
	Smoother string `yaml:"smoother" json:"smoother"`

	// CostNeutral rescales trade weights so entry premiums net to zero
	CostNeutral bool `yaml:"cost_neutral" json:"cost_neutral"`

	// ResultsListLimitMax is the maximum number of results for listing requests
	ResultsListLimitMax int `yaml:"results_list_limit_max" json:"results_list_limit_max"`

	// APITokenTTL is the TTL for API tokens in seconds
	APITokenTTL int `yaml:"api_token_ttl" json:"api_token_ttl"`

	// ListenAddress is the address the API server binds to
	ListenAddress string `yaml:"listen_address" json:"listen_address"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		DataDir:             "/var/lib/vollab/data",
		Tickers:             []string{},
		Smoother:            "svi",
		CostNeutral:         true,
		ResultsListLimitMax: 1000,
		APITokenTTL:         480,
		ListenAddress:       ":8080",
		sources:             make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("VOLLAB_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"data_dir", "tickers", "smoother", "cost_neutral",
		"results_list_limit_max", "api_token_ttl", "listen_address",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.DataDir != "" {
		c.DataDir = file.DataDir
		c.sources["data_dir"] = "file"
	}
	if len(file.Tickers) > 0 {
		c.Tickers = file.Tickers
		c.sources["tickers"] = "file"
	}
	if file.Smoother != "" {
		c.Smoother = file.Smoother
		c.sources["smoother"] = "file"
	}
	if file.ResultsListLimitMax != 0 {
		c.ResultsListLimitMax = file.ResultsListLimitMax
		c.sources["results_list_limit_max"] = "file"
	}
	if file.APITokenTTL != 0 {
		c.APITokenTTL = file.APITokenTTL
		c.sources["api_token_ttl"] = "file"
	}
	if file.ListenAddress != "" {
		c.ListenAddress = file.ListenAddress
		c.sources["listen_address"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("VOLLAB_DATA_DIR"); val != "" {
		c.DataDir = val
		c.sources["data_dir"] = "environment"
	}
	if val := os.Getenv("VOLLAB_TICKERS"); val != "" {
		c.Tickers = splitAndTrim(val)
		c.sources["tickers"] = "environment"
	}
	if val := os.Getenv("VOLLAB_SMOOTHER"); val != "" {
		c.Smoother = val
		c.sources["smoother"] = "environment"
	}
	if val := os.Getenv("VOLLAB_COST_NEUTRAL"); val != "" {
		c.CostNeutral = val == "true" || val == "1"
		c.sources["cost_neutral"] = "environment"
	}
	if val := os.Getenv("VOLLAB_RESULTS_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.ResultsListLimitMax = i
			c.sources["results_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("VOLLAB_API_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APITokenTTL = i
			c.sources["api_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("VOLLAB_LISTEN_ADDRESS"); val != "" {
		c.ListenAddress = val
		c.sources["listen_address"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenTTL returns the API token TTL as a duration
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.APITokenTTL) * time.Second
}

// HasTicker reports whether data loading is restricted to the ticker.
// An empty ticker list allows everything.
func (c *Config) HasTicker(ticker string) bool {
	if len(c.Tickers) == 0 {
		return true
	}
	for _, t := range c.Tickers {
		if strings.EqualFold(t, ticker) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *Config) Validate() error {
	valid := make(map[string]bool)
	for _, s := range ValidSmoothers {
		valid[s] = true
	}
	if !valid[c.Smoother] {
		return fmt.Errorf("invalid smoother: %s", c.Smoother)
	}

	if c.ResultsListLimitMax <= 0 {
		return fmt.Errorf("results_list_limit_max must be positive")
	}
	if c.APITokenTTL <= 0 {
		return fmt.Errorf("api_token_ttl must be positive")
	}

	if _, _, err := net.SplitHostPort(c.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen_address %s: %w", c.ListenAddress, err)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "data_dir", Value: c.DataDir, Source: c.Source("data_dir")},
		{Name: "tickers", Value: strings.Join(c.Tickers, ","), Source: c.Source("tickers")},
		{Name: "smoother", Value: c.Smoother, Source: c.Source("smoother")},
		{Name: "cost_neutral", Value: strconv.FormatBool(c.CostNeutral), Source: c.Source("cost_neutral")},
		{Name: "results_list_limit_max", Value: strconv.Itoa(c.ResultsListLimitMax), Source: c.Source("results_list_limit_max")},
		{Name: "api_token_ttl", Value: strconv.Itoa(c.APITokenTTL), Source: c.Source("api_token_ttl")},
		{Name: "listen_address", Value: c.ListenAddress, Source: c.Source("listen_address")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
