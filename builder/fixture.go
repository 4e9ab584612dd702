// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// fixture.go - textual fixture descriptions for command-line use.
//
// Grammar (case-insensitive kind):
//   path:N | cycle:N | star:N | complete:N | grid:RxC | random:N:P

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFixture turns a short description such as "grid:3x4" or
// "random:20:0.15" into a Constructor. Size checks are left to the
// constructor itself; ParseFixture only rejects text it cannot read
// (ErrUnknownFixture).
func ParseFixture(desc string) (Constructor, error) {
	parts := strings.Split(strings.TrimSpace(desc), ":")
	kind := strings.ToLower(parts[0])
	args := parts[1:]

	bad := func(reason string) error {
		return fmt.Errorf("ParseFixture(%q): %s: %w", desc, reason, ErrUnknownFixture)
	}
	atoi := func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, bad("size " + strconv.Quote(s) + " is not an integer")
		}
		return n, nil
	}

	switch kind {
	case "path", "cycle", "star", "complete":
		if len(args) != 1 {
			return nil, bad("want " + kind + ":N")
		}
		n, err := atoi(args[0])
		if err != nil {
			return nil, err
		}
		switch kind {
		case "path":
			return Path(n), nil
		case "cycle":
			return Cycle(n), nil
		case "star":
			return Star(n), nil
		default:
			return Complete(n), nil
		}

	case "grid":
		if len(args) != 1 {
			return nil, bad("want grid:RxC")
		}
		dims := strings.Split(strings.ToLower(args[0]), "x")
		if len(dims) != 2 {
			return nil, bad("want grid:RxC")
		}
		rows, err := atoi(dims[0])
		if err != nil {
			return nil, err
		}
		cols, err := atoi(dims[1])
		if err != nil {
			return nil, err
		}
		return Grid(rows, cols), nil

	case "random":
		if len(args) != 2 {
			return nil, bad("want random:N:P")
		}
		n, err := atoi(args[0])
		if err != nil {
			return nil, err
		}
		p, perr := strconv.ParseFloat(args[1], 64)
		if perr != nil {
			return nil, bad("probability " + strconv.Quote(args[1]) + " is not a number")
		}
		return RandomSparse(n, p), nil

	default:
		return nil, bad("unknown kind " + strconv.Quote(kind))
	}
}
