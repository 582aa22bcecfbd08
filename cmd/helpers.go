package cmd

import (
	"github.com/mouse-blink/prodscan/internal/config"
	m "github.com/mouse-blink/prodscan/internal/model"
)

// parseRoot resolves the optional positional path argument; the scan
// defaults to the working directory.
func parseRoot(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return m.Path(".")
}

// loadSettings resolves the effective settings for a scan rooted at dir,
// honoring the --config flag.
func loadSettings(dir m.Path) (config.Settings, error) {
	return config.Discover(string(dir), configFlag)
}
