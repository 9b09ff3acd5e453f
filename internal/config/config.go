package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Input settings
	DataDir  string
	HTMLPath string

	// Output settings
	OutputDir      string
	OutputJSONFile string

	// Timing
	Timeout      time.Duration
	PollInterval time.Duration
	SettleDelay  time.Duration

	// Browser settings
	ViewportWidth  int
	ViewportHeight int
	ChromeURL      string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Headless       bool
	NameFilter     string
	Verbose        bool
	HTMLPath       string
	TimeoutSeconds int
	FirstPerMode   bool
	DataDir        string
	OutputDir      string
	ChromeURL      string
	ShowQuestions  bool
	OpenFails      bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		DataDir:        DefaultDataDir,
		HTMLPath:       DefaultHTMLPath,
		OutputDir:      DefaultOutputDir,
		OutputJSONFile: DefaultOutputJSONFile,
		Timeout:        DefaultTimeout,
		PollInterval:   DefaultPollInterval,
		SettleDelay:    DefaultSettleDelay,
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
	}
}

// Apply copies flag overrides onto the config
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.HTMLPath != "" {
		c.HTMLPath = flags.HTMLPath
	}
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(flags.TimeoutSeconds) * time.Second
	}
	if flags.ChromeURL != "" {
		c.ChromeURL = flags.ChromeURL
	}
}

// LoadEnv loads a dotenv file into the process environment.
// A missing file is not an error; variables already set are kept.
func LoadEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// GetResultsPath returns the absolute path of the results JSON file,
// so run and fails always read/write the same file regardless of cwd.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.OutputDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetPageURL canonicalizes the page under test and returns its file:// URL
func (c *Config) GetPageURL() (string, error) {
	abs, err := filepath.Abs(c.HTMLPath)
	if err != nil {
		return "", fmt.Errorf("resolve page path %s: %w", c.HTMLPath, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("resolve page path %s: %w", c.HTMLPath, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve page path %s: %w", c.HTMLPath, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// GetExecOverride returns the browser executable named in the environment, or ""
func (c *Config) GetExecOverride() string {
	return os.Getenv(ChromeEnvVar)
}

// GetExecCandidates returns the platform default browser paths to probe
func (c *Config) GetExecCandidates() []string {
	return DefaultExecPaths[runtime.GOOS]
}
