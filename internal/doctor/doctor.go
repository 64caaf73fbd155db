// Package doctor runs readiness diagnostics for config, input, output, and fonts.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aroth/blitzdeck/internal/config"
	"github.com/aroth/blitzdeck/internal/fit"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment/config checks for a loaded config.
func Run(cfg config.Loaded) Report {
	checks := []Check{}

	configMsg := fmt.Sprintf("loaded %q", cfg.Path)
	if !cfg.Exists {
		configMsg = fmt.Sprintf("%q not found; using defaults", cfg.Path)
	}
	checks = append(checks, Check{Name: "config", Pass: true, Message: configMsg})

	checks = append(checks, checkInput(cfg.Config.Input.Path))
	checks = append(checks, checkOutputDir(cfg.Config.Output.Path))
	checks = append(checks, checkFontFile(cfg.Config.Font.File))

	return Report{Checks: checks}
}

// checkInput validates that the word list exists and carries a readable extension.
func checkInput(path string) Check {
	if strings.TrimSpace(path) == "" {
		return Check{Name: "input.path", Pass: false, Message: "input.path is empty"}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Check{Name: "input.path", Pass: false, Message: fmt.Sprintf("cannot stat %q: %v", path, err)}
	}
	if info.IsDir() {
		return Check{Name: "input.path", Pass: false, Message: fmt.Sprintf("%q is a directory", path)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".csv", ".txt":
		return Check{Name: "input.path", Pass: true, Message: fmt.Sprintf("found %q", path)}
	default:
		return Check{Name: "input.path", Pass: true, Message: fmt.Sprintf("found %q (unrecognized extension, will read line by line)", path)}
	}
}

// checkOutputDir validates that the deck's parent directory exists or can hold it.
func checkOutputDir(path string) Check {
	if strings.TrimSpace(path) == "" {
		return Check{Name: "output.path", Pass: false, Message: "output.path is empty"}
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Check{Name: "output.path", Pass: true, Message: fmt.Sprintf("directory %q will be created", dir)}
		}
		return Check{Name: "output.path", Pass: false, Message: fmt.Sprintf("cannot stat %q: %v", dir, err)}
	}
	if !info.IsDir() {
		return Check{Name: "output.path", Pass: false, Message: fmt.Sprintf("%q is not a directory", dir)}
	}
	return Check{Name: "output.path", Pass: true, Message: fmt.Sprintf("directory %q exists", dir)}
}

// checkFontFile parses the metrics font when one is configured.
func checkFontFile(path string) Check {
	if strings.TrimSpace(path) == "" {
		return Check{Name: "font.file", Pass: true, Message: "not set; heuristic width metrics in use"}
	}

	if _, err := fit.LoadMeasuredMetrics(path); err != nil {
		return Check{Name: "font.file", Pass: false, Message: err.Error()}
	}
	return Check{Name: "font.file", Pass: true, Message: fmt.Sprintf("parsed %q", path)}
}
