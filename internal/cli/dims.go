package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/spdemo/internal/demo"
)

var (
	errInvalidDimensions = errors.New("dimensions must be ROWSxCOLS with positive integers")
	errInvalidPoint      = errors.New("point must be ROW,COL with non-negative integers")
)

// parseDimensions parses "ROWSxCOLS", e.g. "20x40". The separator is
// case-insensitive.
func parseDimensions(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidDimensions, s)
	}
	rows, errR := strconv.Atoi(r)
	cols, errC := strconv.Atoi(c)
	if errR != nil || errC != nil || rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidDimensions, s)
	}

	return rows, cols, nil
}

// dimensions returns the grid size from the optional positional argument,
// falling back to grid.rows and grid.cols.
func dimensions(args []string) (rows, cols int, err error) {
	if len(args) > 0 {
		return parseDimensions(args[0])
	}
	rows, cols = viper.GetInt(gridRowsKey), viper.GetInt(gridColsKey)
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: configured %dx%d", errInvalidDimensions, rows, cols)
	}

	return rows, cols, nil
}

// parsePoint parses "ROW,COL", e.g. "0,0".
func parsePoint(s string) (demo.Point, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return demo.Point{}, fmt.Errorf("%w: %q", errInvalidPoint, s)
	}
	row, errR := strconv.Atoi(strings.TrimSpace(r))
	col, errC := strconv.Atoi(strings.TrimSpace(c))
	if errR != nil || errC != nil || row < 0 || col < 0 {
		return demo.Point{}, fmt.Errorf("%w: %q", errInvalidPoint, s)
	}

	return demo.Point{Row: row, Col: col}, nil
}
