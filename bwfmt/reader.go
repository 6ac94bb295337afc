// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bwfmt reads the bandwidth measurement files written by the
// point-to-point benchmark harness.
//
// A measurement file is plain text with one measurement per line. Each
// line holds two comma-separated numbers: the message size and the
// measured bandwidth. Blank lines and lines starting with '#' are
// ignored.
package bwfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// A Row is a single measurement.
type Row struct {
	MsgSize   float64
	Bandwidth float64
}

// A Reader reads measurement rows.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, then check Err.
type Reader struct {
	cr       *csv.Reader
	fileName string
	row      Row
	err      error
}

// A SyntaxError represents a malformed line of a measurement file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader for r. fileName is used in error
// messages.
func NewReader(r io.Reader, fileName string) *Reader {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Reader{cr: cr, fileName: fileName}
}

// Scan advances to the next row. It returns false at the end of the
// input or on the first error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	rec, err := r.cr.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			msg := perr.Err.Error()
			if errors.Is(perr.Err, csv.ErrFieldCount) {
				msg = fmt.Sprintf("want 2 fields, got %d", len(rec))
			}
			r.err = &SyntaxError{r.fileName, perr.StartLine, msg}
		} else {
			r.err = err
		}
		return false
	}

	line, _ := r.cr.FieldPos(0)
	var vals [2]float64
	for i, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			r.err = &SyntaxError{r.fileName, line, fmt.Sprintf("parsing field %d: invalid number %q", i+1, field)}
			return false
		}
		vals[i] = v
	}
	r.row = Row{MsgSize: vals[0], Bandwidth: vals[1]}
	return true
}

// Row returns the row read by the last successful call to Scan.
func (r *Reader) Row() Row {
	return r.row
}

// Err returns the first error encountered by the Reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// Measurements is the content of one measurement file, stored by
// column.
type Measurements struct {
	File      string
	MsgSize   []float64
	Bandwidth []float64
}

// Len returns the number of rows in m.
func (m *Measurements) Len() int {
	return len(m.MsgSize)
}

// Read reads all rows from r. It fails on the first malformed row and
// if r contains no rows.
func Read(r io.Reader, fileName string) (*Measurements, error) {
	m := &Measurements{File: fileName}
	rd := NewReader(r, fileName)
	for rd.Scan() {
		row := rd.Row()
		m.MsgSize = append(m.MsgSize, row.MsgSize)
		m.Bandwidth = append(m.Bandwidth, row.Bandwidth)
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	if m.Len() == 0 {
		return nil, fmt.Errorf("%s: no measurements", fileName)
	}
	return m, nil
}

// ReadFile reads the measurement file at path.
func ReadFile(path string) (*Measurements, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}
