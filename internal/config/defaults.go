package config

import "time"

const (
	// DefaultDataDir is where questions*.json files are discovered
	DefaultDataDir = "data"
	// DefaultHTMLPath is the page under test
	DefaultHTMLPath = "./index.html"
	// DefaultOutputDir receives screenshots and the results file
	DefaultOutputDir = "test_output"
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultEnvFile is loaded before reading browser overrides
	DefaultEnvFile = ".env"

	// DefaultTimeout bounds every single wait operation
	DefaultTimeout = 10 * time.Second
	// DefaultPollInterval is the delay between two presence checks
	DefaultPollInterval = 100 * time.Millisecond
	// DefaultSettleDelay is the pause after the deliberate wrong answer
	DefaultSettleDelay = 500 * time.Millisecond

	// Viewport used for every page
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800

	// ChromeEnvVar names the browser executable override
	ChromeEnvVar = "CHROME"
)

// DefaultExecPaths are probed per GOOS when no override is set
var DefaultExecPaths = map[string][]string{
	"darwin": {"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"},
}
