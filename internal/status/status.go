// Package status renders parameter readings for the terminal.
package status

import (
	"encoding/json"
	"fmt"
	"io"

	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/ideapad"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const unknown = "unknown"

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingRight(2)
	dataStyle    = lipgloss.NewStyle().PaddingRight(2)
	onStyle      = dataStyle.Foreground(lipgloss.Color("2"))
	unknownStyle = dataStyle.Foreground(lipgloss.Color("241")).Italic(true)
)

// FormatValue renders v for humans: booleans as on/off, integers as is.
func FormatValue(v attribute.Value) string {
	if b, ok := v.Bool(); ok {
		if b {
			return "on"
		}
		return "off"
	}

	n, _ := v.Uint8()
	return fmt.Sprintf("%d", n)
}

func formatReading(r ideapad.Reading) string {
	if !r.Known() {
		return unknown
	}
	return FormatValue(r.Value)
}

// RenderText writes a table of readings. Unknown values are shown as such
// rather than omitted.
func RenderText(w io.Writer, readings []ideapad.Reading) {
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, []string{r.Parameter.Label(), formatReading(r), r.Parameter.Description()})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers("PARAMETER", "VALUE", "DESCRIPTION").
		Rows(rows...)

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col != 1 || row < 0 || row >= len(rows) {
			return dataStyle
		}
		switch rows[row][1] {
		case unknown:
			return unknownStyle
		case "on":
			return onStyle
		default:
			return dataStyle
		}
	})

	fmt.Fprintln(w, t)
}

// RenderJSON writes readings as one object keyed by attribute name, with
// null for unknown values.
func RenderJSON(w io.Writer, readings []ideapad.Reading) error {
	out := make(map[string]any, len(readings))
	for _, r := range readings {
		out[r.Parameter.String()] = jsonValue(r)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func jsonValue(r ideapad.Reading) any {
	if !r.Known() {
		return nil
	}
	return JSONValue(r.Value)
}

// JSONValue converts v to a bool or a number for encoding.
func JSONValue(v attribute.Value) any {
	if b, ok := v.Bool(); ok {
		return b
	}

	n, _ := v.Uint8()
	return n
}

// RenderParams lists every parameter with its domain.
func RenderParams(w io.Writer) {
	rows := make([][]string, 0, len(attribute.All()))
	for _, p := range attribute.All() {
		domain := "true|false"
		if p.Kind() == attribute.KindUint8 {
			domain = fmt.Sprintf("0-%d", p.Max())
		}
		rows = append(rows, []string{p.String(), domain, p.Description()})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers("NAME", "VALUES", "DESCRIPTION").
		Rows(rows...)

	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return dataStyle
	})

	fmt.Fprintln(w, t)
}
