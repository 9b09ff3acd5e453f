package cli

import "gtr/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Headless:       f.Headless,
		NameFilter:     f.NameFilter,
		Verbose:        f.Verbose,
		HTMLPath:       f.HTMLPath,
		TimeoutSeconds: f.TimeoutSeconds,
		FirstPerMode:   f.FirstPerMode,
		DataDir:        f.DataDir,
		OutputDir:      f.OutputDir,
		ChromeURL:      f.ChromeURL,
		ShowQuestions:  f.ShowQuestions,
		OpenFails:      f.OpenFails,
	}
}
