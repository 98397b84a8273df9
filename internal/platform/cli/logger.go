package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates the structured logger used by commands and the
// controller. level is one of debug, info, warn, error.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("cli: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           lvl,
	}), nil
}
