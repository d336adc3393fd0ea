package handlers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/imamik/ccs/internal/resource"
)

// Output formats accepted by -o.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

func validateOutput(output string, allowed ...string) error {
	if output == "" {
		return nil
	}
	for _, a := range allowed {
		if output == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (want one of %v)", output, allowed)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeStructured(w io.Writer, output string, v any) error {
	if output == OutputYAML {
		return writeYAML(w, v)
	}
	return writeJSON(w, v)
}

// writeTable prints records as KIND, UUID, NAME rows.
func writeTable(w io.Writer, records []resource.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "UUID", "Name"})
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, rec := range records {
		table.Append([]string{rec.Kind().String(), rec.ID(), rec.DisplayName()})
	}
	table.Render()
}
