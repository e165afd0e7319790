package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/kbukum/sheetfeed/config"
	"github.com/kbukum/sheetfeed/sheets"
)

// writeRecords prints records in the configured format, followed by a newline.
func writeRecords(w io.Writer, records []sheets.Record, out config.OutputConfig) error {
	if records == nil {
		records = []sheets.Record{}
	}
	switch out.Format {
	case config.FormatYAML:
		data, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case config.FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if out.Indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", out.Indent))
		}
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", out.Format)
	}
}
