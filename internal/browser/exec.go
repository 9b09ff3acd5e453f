package browser

import "os"

// ResolveExecutable picks the browser binary to launch.
// An explicit override wins, then the first existing candidate; "" lets
// chromedp run its own lookup.
func ResolveExecutable(override string, candidates []string, exists func(string) bool) string {
	if override != "" {
		return override
	}
	if exists == nil {
		exists = fileExists
	}
	for _, path := range candidates {
		if exists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
