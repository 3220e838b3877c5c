// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// ErrNoData is returned when a chart needs values from an empty series.
var ErrNoData = errors.New("series has no data")

// Series is a sequence of labeled values, such as monthly invoice
// totals. Labels[i] names Values[i].
type Series struct {
	Name   string
	Labels []string
	Values []float64
}

func (s Series) Len() int {
	return len(s.Values)
}

// Bounds returns the smallest and largest value in s.
func (s Series) Bounds() (min, max float64, err error) {
	if len(s.Values) == 0 {
		return 0, 0, ErrNoData
	}
	min, max = stats.Bounds(s.Values)
	return min, max, nil
}

// label returns the label of value i, or its index if s has no
// label for it.
func (s Series) label(i int) string {
	if i < len(s.Labels) {
		return s.Labels[i]
	}
	return strconv.Itoa(i + 1)
}

// ReadCSV reads a series from label,value records.
//
// If the value column of the first record is not a number, that
// record is a header and its value column names the series. Values
// must be finite.
func ReadCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var s Series
	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return Series{}, fmt.Errorf("reading series: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return Series{}, fmt.Errorf("reading series: line %d: want label,value, got %d field(s)", line, len(rec))
		}
		text := strings.TrimSpace(rec[1])
		v, err := strconv.ParseFloat(text, 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return Series{}, fmt.Errorf("reading series: line %d: bad value %q", line, text)
		}
		if err != nil {
			if first {
				s.Name = text
				continue
			}
			return Series{}, fmt.Errorf("reading series: line %d: bad value %q", line, text)
		}
		s.Labels = append(s.Labels, strings.TrimSpace(rec[0]))
		s.Values = append(s.Values, v)
	}
	return s, nil
}
