// Package gridfile decodes grid descriptions written in YAML or JSON.
//
// Rows are strings, one character per cell, row index = Y and column = X:
//
//	.      open, terrain cost 1
//	# X    blocked
//	1-9    open with that terrain cost
//	S G    open, marks the start or goal
//
// A legend maps extra symbols to terrain costs.
package gridfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath"
)

// ErrMalformed is returned for descriptions that cannot form a grid.
var ErrMalformed = errors.New("malformed grid description")

// Format selects the decoder.
type Format int

const (
	YAML Format = iota
	JSON
)

// Coordinate is an [x, y] pair.
type Coordinate [2]int

func (c Coordinate) Point() gridpath.Point { return gridpath.Point{X: c[0], Y: c[1]} }

// QueryEntry is an extra start/goal pair to run as part of a batch.
type QueryEntry struct {
	ID    string     `yaml:"id" json:"id"`
	Start Coordinate `yaml:"start" json:"start"`
	Goal  Coordinate `yaml:"goal" json:"goal"`
}

// Document is the on-disk shape of a grid description.
type Document struct {
	Rows    []string           `yaml:"rows" json:"rows"`
	Legend  map[string]float64 `yaml:"legend" json:"legend"`
	Start   *Coordinate        `yaml:"start" json:"start"`
	Goal    *Coordinate        `yaml:"goal" json:"goal"`
	Queries []QueryEntry       `yaml:"queries" json:"queries"`
}

// Description is a decoded, validated grid with its queries.
type Description struct {
	Grid    *gridpath.Grid
	Start   gridpath.Point
	Goal    gridpath.Point
	Queries []gridpath.Query
}

// Load reads path and picks the decoder from its extension.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := YAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = JSON
	}
	description, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return description, nil
}

// Parse decodes data and builds the grid.
func Parse(data []byte, format Format) (*Description, error) {
	var document Document
	switch format {
	case JSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&document); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&document); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}
	return document.Build()
}

// Build validates the document and turns it into a Description.
func (document Document) Build() (*Description, error) {
	if len(document.Rows) == 0 || len(document.Rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	legend := make(map[rune]float64, len(document.Legend))
	for symbol, cost := range document.Legend {
		runes := []rune(symbol)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: legend symbol %q must be a single character", ErrMalformed, symbol)
		}
		if _, builtin := builtinCost(runes[0]); builtin || isBlocked(runes[0]) || isMarker(runes[0]) {
			return nil, fmt.Errorf("%w: legend symbol %q shadows a built-in symbol", ErrMalformed, symbol)
		}
		legend[runes[0]] = cost
	}

	width := len([]rune(document.Rows[0]))
	grid, err := gridpath.NewGrid(width, len(document.Rows))
	if err != nil {
		return nil, err
	}

	var start, goal *gridpath.Point
	for y, row := range document.Rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, y, len(cells), width)
		}
		for x, symbol := range cells {
			p := gridpath.Point{X: x, Y: y}
			switch {
			case isBlocked(symbol):
				err = grid.SetBlocked(p, true)
			case isMarker(symbol):
				marker := &start
				if symbol == 'G' {
					marker = &goal
				}
				if *marker != nil {
					return nil, fmt.Errorf("%w: more than one %q", ErrMalformed, symbol)
				}
				*marker = &p
			default:
				cost, ok := builtinCost(symbol)
				if !ok {
					cost, ok = legend[symbol]
				}
				if !ok {
					return nil, fmt.Errorf("%w: unknown symbol %q at %v", ErrMalformed, symbol, p)
				}
				err = grid.SetTerrainCost(p, cost)
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
			}
		}
	}

	for _, endpoint := range []struct {
		symbol   rune
		explicit *Coordinate
		marker   **gridpath.Point
	}{{'S', document.Start, &start}, {'G', document.Goal, &goal}} {
		if endpoint.explicit == nil {
			continue
		}
		p := endpoint.explicit.Point()
		if *endpoint.marker != nil && **endpoint.marker != p {
			return nil, fmt.Errorf("%w: %q marker at %v conflicts with explicit %v", ErrMalformed, endpoint.symbol, **endpoint.marker, p)
		}
		*endpoint.marker = &p
	}
	if start == nil || goal == nil {
		return nil, fmt.Errorf("%w: start and goal must be given", ErrMalformed)
	}

	description := &Description{Grid: grid, Start: *start, Goal: *goal}
	for _, query := range document.Queries {
		description.Queries = append(description.Queries, gridpath.Query{
			ID:    query.ID,
			Start: query.Start.Point(),
			Goal:  query.Goal.Point(),
		})
	}
	return description, nil
}

func isBlocked(symbol rune) bool { return symbol == '#' || symbol == 'X' }
func isMarker(symbol rune) bool { return symbol == 'S' || symbol == 'G' }

func builtinCost(symbol rune) (float64, bool) {
	switch {
	case symbol == '.':
		return 1, true
	case symbol >= '1' && symbol <= '9':
		return float64(symbol - '0'), true
	}
	return 0, false
}
