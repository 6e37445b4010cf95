package text

import (
	"log/slog"

	"github.com/vectorui/bui"
)

// slogger returns the logger configured with bui.SetLogger.
func slogger() *slog.Logger { return bui.Logger() }
