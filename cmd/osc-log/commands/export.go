package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/theta-osc/osc-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{"timestamp", "session_id", "direction", "layer", "category", "type", "command", "path", "status", "size"}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func csvRow(event log.Event) []string {
	var command, path, status, size string
	switch {
	case event.Exchange != nil:
		command = event.Exchange.Command
		path = event.Exchange.Path
		if event.Exchange.StatusCode != 0 {
			status = strconv.Itoa(event.Exchange.StatusCode)
		}
		size = strconv.Itoa(event.Exchange.BodySize)
	case event.Frame != nil:
		size = strconv.Itoa(event.Frame.Size)
	case event.StateChange != nil:
		if event.StateChange.Entity == log.StateEntityCommand {
			command = event.StateChange.ID
		}
		status = event.StateChange.NewState
	case event.Error != nil:
		status = event.Error.Code
	}

	return []string{
		event.Timestamp.UTC().Format(timestampLayout),
		event.SessionID,
		event.Direction.String(),
		event.Layer.String(),
		event.Category.String(),
		typeLabel(event),
		command,
		path,
		status,
		size,
	}
}
