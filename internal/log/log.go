// File: internal/log/log.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package log builds [slog.Handler]s backed by charmbracelet/log.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

var (
	ErrUnknownFormat = errors.New("unknown log format")
	ErrUnknownLevel  = errors.New("unknown log level")
)

// NewHandler returns a handler writing to w at the given level and format.
func NewHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := charmlog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	var formatter charmlog.Formatter
	switch strings.ToLower(format) {
	case FormatText, "":
		formatter = charmlog.TextFormatter
	case FormatLogfmt:
		formatter = charmlog.LogfmtFormatter
	case FormatJSON:
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}
