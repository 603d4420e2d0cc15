package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/couchcryptid/ship-data-explorer/internal/render"
)

// commandTable builds the dispatcher: the single source of truth for which
// commands exist. help renders its output from this table.
func commandTable() map[string]command {
	return map[string]command{
		"help": {
			usage:    "help",
			describe: "Show available commands",
			run:      handleHelp,
		},
		"show_countries": {
			usage:    "show_countries",
			describe: "Display all unique countries in the dataset",
			run:      handleShowCountries,
		},
		"top_countries": {
			usage:    "top_countries <num_countries>",
			describe: "Show top N countries by number of ships",
			run:      handleTopCountries,
		},
		"ships_by_types": {
			usage:    "ships_by_types",
			describe: "Display ship types and their counts",
			run:      handleShipsByTypes,
		},
		"search_ship": {
			usage:    "search_ship [name]",
			describe: "Search for ships by name (case-insensitive, partial)",
			run:      handleSearchShip,
		},
		"speed_histogram": {
			usage:    "speed_histogram [filename]",
			describe: "Generate and save a histogram of ship speeds",
			run:      handleSpeedHistogram,
		},
		"draw_map": {
			usage:    "draw_map [filename]",
			describe: "Plot ship positions (LAT/LON) on a world map",
			run:      handleDrawMap,
		},
		"exit": {
			usage:    "exit",
			describe: "Exit the CLI",
			run:      handleExit,
		},
	}
}

func handleHelp(s *Session, _ string) error {
	fmt.Fprintln(s.Out, "Available commands:")
	for _, name := range s.CommandNames() {
		cmd := s.commands[name]
		fmt.Fprintf(s.Out, "  %-32s %s\n", cmd.usage, cmd.describe)
	}
	return nil
}

func handleShowCountries(s *Session, _ string) error {
	for _, country := range s.fleet.UniqueCountries() {
		fmt.Fprintln(s.Out, country)
	}
	return nil
}

func handleTopCountries(s *Session, rest string) error {
	args := strings.Fields(rest)
	if len(args) != 1 {
		return errors.New("usage: top_countries <num_countries>")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("top_countries: %q is not a positive integer", args[0])
	}

	t := newTable(s, fmt.Sprintf("Top %d Countries by Ship Count", n))
	t.AppendHeader(table.Row{"Country", "Ships"})
	for _, row := range s.fleet.TopCountries(n) {
		t.AppendRow(table.Row{row.Country, row.Count})
	}
	t.Render()
	return nil
}

func handleShipsByTypes(s *Session, rest string) error {
	if rest != "" {
		return errors.New("usage: ships_by_types (no arguments)")
	}

	t := newTable(s, "Ships by Type")
	t.AppendHeader(table.Row{"Type", "Ships"})
	for _, row := range s.fleet.TypeCounts() {
		t.AppendRow(table.Row{row.Type, row.Count})
	}
	t.Render()
	return nil
}

func handleSearchShip(s *Session, rest string) error {
	term := rest
	if term == "" {
		var err error
		if term, err = s.promptLine(searchPrompt); err != nil {
			return err
		}
	}

	matches := s.fleet.SearchByName(term)
	if len(matches) == 0 {
		fmt.Fprintln(s.Out, "No ship found with that name.")
		return nil
	}

	for _, ship := range matches {
		fmt.Fprintf(s.Out, "Found: %s (Country: %s, Type: %s)\n", ship.Name, ship.Country, ship.Type)
	}
	return nil
}

func handleSpeedHistogram(s *Session, rest string) error {
	filename, err := plotFilename(rest, defaultHistogramFile, "speed_histogram")
	if err != nil {
		return err
	}

	if err := s.histogram.Render(s.fleet.Speeds(), filename); err != nil {
		if errors.Is(err, render.ErrNoData) {
			fmt.Fprintln(s.Out, "No valid speed data found.")
			return nil
		}
		return err
	}

	s.metrics.PlotsWritten.WithLabelValues("histogram").Inc()
	fmt.Fprintf(s.Out, "Histogram saved to '%s'\n", filename)
	return nil
}

func handleDrawMap(s *Session, rest string) error {
	filename, err := plotFilename(rest, defaultMapFile, "draw_map")
	if err != nil {
		return err
	}

	if err := s.worldMap.Render(s.fleet.Positions(), filename); err != nil {
		if errors.Is(err, render.ErrNoData) {
			fmt.Fprintln(s.Out, "No valid ship position data available.")
			return nil
		}
		return err
	}

	s.metrics.PlotsWritten.WithLabelValues("map").Inc()
	fmt.Fprintf(s.Out, "Ship map saved as '%s'\n", filename)
	return nil
}

func handleExit(s *Session, _ string) error {
	fmt.Fprintln(s.Out, goodbye)
	return errExit
}

// plotFilename resolves the optional filename argument of a plot command.
func plotFilename(rest, fallback, cmdName string) (string, error) {
	args := strings.Fields(rest)
	switch len(args) {
	case 0:
		return fallback, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("usage: %s [filename]", cmdName)
	}
}

func newTable(s *Session, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(s.Out)
	t.SetTitle(title)
	// Keep header values as registered, not upper-cased.
	t.Style().Format.Header = text.FormatDefault
	return t
}
