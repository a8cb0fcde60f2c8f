// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xy

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Load reads a whitespace-separated tabular file: one point per line,
// columns "x y [y_err]"; blank lines and lines starting with '#' are
// skipped. Load always reads the file from disk itself; this package has no
// FileParser-based loading variant.
func Load(path string) (o *XY, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("xy: Load: cannot open %q: %v", path, err)
	}
	defer f.Close()
	o = new(XY)
	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, chk.Err("xy: Load: ParseError: %q line %d: expected at least 2 columns, got %d", path, lineno, len(fields))
		}
		x, errx := strconv.ParseFloat(fields[0], 64)
		y, erry := strconv.ParseFloat(fields[1], 64)
		if errx != nil || erry != nil {
			return nil, chk.Err("xy: Load: ParseError: %q line %d: malformed values %q", path, lineno, line)
		}
		o.x = append(o.x, x)
		o.y = append(o.y, y)
	}
	if err := sc.Err(); err != nil {
		return nil, chk.Err("xy: Load: %q: %v", path, err)
	}
	return o, nil
}

// Save writes the tabular file format: "%16.10e %16.10e" per line, which
// round-trips through Load to 1e-10 relative error
func (o *XY) Save(path string) (err error) {
	var sb strings.Builder
	for i := range o.x {
		sb.WriteString(io.Sf("%16.10e %16.10e\n", o.x[i], o.y[i]))
	}
	return io.WriteFileSD(dirOf(path), baseOf(path), sb.String())
}

func dirOf(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return "."
}

func baseOf(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
