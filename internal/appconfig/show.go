package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		fallback := Defaults()
		cfg = &fallback
	}

	dataFile := cfg.DataFile
	if dataFile == "" {
		dataFile = "(built-in)"
	}
	expand := "none"
	if cfg.ExpandFAQ >= 0 {
		expand = fmt.Sprintf("%d", cfg.ExpandFAQ)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:        %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Data File:    %s\n", dataFile)
	fmt.Fprintf(out, "  Log File:     %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  No Color:     %v\n", cfg.NoColor)
	fmt.Fprintf(out, "  Format:       %s\n", cfg.RenderFormat())
	fmt.Fprintf(out, "  Expanded FAQ: %s\n", expand)
}
