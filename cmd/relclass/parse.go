// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/binrel/relation"
)

var (
	// errNoRows is returned when a command receives no relation rows.
	errNoRows = errors.New("relclass: no rows given")

	// errBadCell is returned for a row character other than '0' or '1'.
	errBadCell = errors.New("relclass: cells must be '0' or '1'")

	// errBadKeep is returned for a malformed --keep list.
	errBadKeep = errors.New("relclass: --keep must be a comma-separated list of positions")
)

// parseRows turns positional args such as "110" "011" into a relation.
// Ragged and non-square input is reported by the relation package.
func parseRows(args []string) (*relation.Dense, error) {
	if len(args) == 0 {
		return nil, errNoRows
	}

	table := make([][]bool, len(args))
	for i, row := range args {
		table[i] = make([]bool, len(row))
		for j, ch := range []byte(row) {
			switch ch {
			case '0':
			case '1':
				table[i][j] = true
			default:
				return nil, fmt.Errorf("row %d column %d (%q): %w", i+1, j+1, ch, errBadCell)
			}
		}
	}

	d, err := relation.FromRows(table)
	if err != nil {
		return nil, err
	}
	if err = relation.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("%d rows of %d cells: %w", d.Rows(), d.Cols(), err)
	}

	return d, nil
}

// parseKeep reads a --keep value like "1,3,4" into 1-based positions.
// Range checks happen in the narrowing operations.
func parseKeep(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errBadKeep
	}

	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, errBadKeep)
		}
		out = append(out, v)
	}

	return out, nil
}

// formatRows renders a relation back in the 0/1 row format, one row per line.
func formatRows(d *relation.Dense) string {
	var sb strings.Builder
	for _, row := range d.ToRows() {
		for _, v := range row {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
