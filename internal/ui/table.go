package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // header row plus its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is focused in CLI output, so the selected row looks like any other.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string for CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// fixtureColumns are the columns of the historical sample table.
var fixtureColumns = []TableColumn{
	{Title: "Date", Width: 6},
	{Title: "Temp °C", Width: 8},
	{Title: "Vib Hz", Width: 7},
	{Title: "RPM", Width: 6},
	{Title: "Anomaly", Width: 8},
}

// RenderFixtureTable renders historical samples as a table.
func RenderFixtureTable(samples []vehicle.HistoricalSample) string {
	if len(samples) == 0 {
		return MutedStyle().Render("No samples")
	}

	rows := make([][]string, len(samples))
	for i, s := range samples {
		flag := ""
		if s.Anomaly {
			flag = SymbolWarning
		}
		rows[i] = []string{
			s.Date,
			strconv.FormatFloat(s.Temperature, 'f', -1, 64),
			strconv.FormatFloat(s.Vibration, 'f', -1, 64),
			strconv.FormatFloat(s.RPM, 'f', -1, 64),
			flag,
		}
	}
	return RenderSimpleTable(fixtureColumns, rows)
}
