package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"mooncalendar/lunar"
)

// Report is a list of daily snapshots rendered together.
type Report []lunar.Snapshot

// Print returns a fixed-width table with one line per snapshot.
func (r Report) Print() string {
	var out strings.Builder
	for _, s := range r {
		fmt.Fprintf(&out, "%s %s %-15s |%6.2f d |%4.0f%% |%6.2f R |%6.2f° |%7.2f° | %s\n",
			s.Date, s.Phase.Symbol(), s.Phase, s.Age, s.Illumination,
			s.Distance, s.Latitude, s.Longitude, s.Zodiac)
	}
	return out.String()
}

// describe returns a multi-line description of a single snapshot.
func describe(s lunar.Snapshot) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Date:         %s\n", s.Date)
	fmt.Fprintf(&out, "Phase:        %s %s\n", s.Phase.Symbol(), s.Phase)
	fmt.Fprintf(&out, "Age:          %.2f days\n", s.Age)
	fmt.Fprintf(&out, "Illumination: %.0f%%\n", s.Illumination)
	fmt.Fprintf(&out, "Distance:     %.2f Earth radii\n", s.Distance)
	fmt.Fprintf(&out, "Latitude:     %.2f°\n", s.Latitude)
	fmt.Fprintf(&out, "Longitude:    %.2f°\n", s.Longitude)
	fmt.Fprintf(&out, "Zodiac:       %s\n", s.Zodiac)
	return out.String()
}

// render writes v as text, json or yaml. Text output of a single Snapshot
// is a description, of a Report a table.
func render(w io.Writer, format string, v any) error {
	switch format {
	case "", "text":
		switch v := v.(type) {
		case lunar.Snapshot:
			_, err := io.WriteString(w, describe(v))
			return err
		case Report:
			_, err := io.WriteString(w, v.Print())
			return err
		}
		_, err := fmt.Fprintln(w, v)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}
