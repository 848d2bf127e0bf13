// Package commands implements the osc-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theta-osc/osc-go/pkg/log"
)

// timestampLayout is used for every timestamp printed or exported.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format(timestampLayout)
	fmt.Fprintf(w, "%s [session:%s] %-3s %s %s\n",
		ts, shortenSessionID(event.SessionID), event.Direction.String(), event.Layer.String(), typeLabel(event))

	switch {
	case event.Exchange != nil:
		formatExchangeDetails(w, event.Exchange)
	case event.Frame != nil:
		fmt.Fprintf(w, "  Frame #%d: %d bytes\n", event.Frame.Index, event.Frame.Size)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

func typeLabel(event log.Event) string {
	switch {
	case event.Exchange != nil:
		if event.Direction == log.DirectionOut {
			return "Request"
		}
		return "Response"
	case event.Frame != nil:
		return "Frame"
	case event.StateChange != nil:
		return "State"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatExchangeDetails(w io.Writer, ex *log.ExchangeEvent) {
	fmt.Fprintf(w, "  %s %s", ex.Method, ex.Path)
	if ex.StatusCode != 0 {
		fmt.Fprintf(w, " -> %d", ex.StatusCode)
	}
	fmt.Fprintln(w)
	if ex.Command != "" {
		fmt.Fprintf(w, "  Command: %s\n", ex.Command)
	}
	if ex.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(ex.Duration))
	}
	if len(ex.Body) > 0 {
		fmt.Fprintf(w, "  Body: %s", string(ex.Body))
		if ex.Truncated {
			fmt.Fprintf(w, " (truncated, %d bytes)", ex.BodySize)
		}
		fmt.Fprintln(w)
	}
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s", sc.Entity.String())
	if sc.ID != "" {
		fmt.Fprintf(w, " (%s)", sc.ID)
	}
	fmt.Fprintln(w)
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != "" {
		fmt.Fprintf(w, "  Code: %s\n", err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	l, ok := log.ParseLayer(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid layer: %s (must be http, command, or preview)", s)
	}
	return l, nil
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be exchange, frame, state, or error)", s)
	}
	return c, nil
}

// RunView prints every event matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
