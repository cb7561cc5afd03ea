/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"d7y.io/dataguard/internal/dferrors"
	"d7y.io/dataguard/pkg/slices"
)

// DefaultNullValues are the cells read as missing values, the lowercase
// "na" sentinel is not one of them.
var DefaultNullValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}

// Column is a named sequence of cells of a dataset.
type Column struct {
	// Name is unique within a dataset.
	Name string

	cells   []string
	missing []bool

	// floats is filled by ConvertToFloat, missing cells are NaN.
	floats []float64
}

// Len returns the number of rows of the column.
func (c *Column) Len() int {
	return len(c.cells)
}

// Cell returns the raw cell of row i.
func (c *Column) Cell(i int) string {
	return c.cells[i]
}

// IsMissing returns whether row i is missing.
func (c *Column) IsMissing(i int) bool {
	return c.missing[i]
}

// MissingCount returns the number of missing rows.
func (c *Column) MissingCount() int {
	var count int
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			count++
		}
	}

	return count
}

// MissingFraction returns missing rows divided by rows, a column without
// rows has fraction 0.
func (c *Column) MissingFraction() float64 {
	if c.Len() == 0 {
		return 0
	}

	return float64(c.MissingCount()) / float64(c.Len())
}

// IsFloat returns whether the column has been converted to float.
func (c *Column) IsFloat() bool {
	return c.floats != nil
}

// Float64s returns the non-missing values of a converted column in row order.
func (c *Column) Float64s() []float64 {
	if !c.IsFloat() {
		return nil
	}

	values := make([]float64, 0, len(c.floats))
	for i, v := range c.floats {
		if !c.IsMissing(i) {
			values = append(values, v)
		}
	}

	return values
}

// Dataset is an ordered collection of equally long columns.
type Dataset struct {
	// Name identifies the dataset in logs and errors.
	Name string

	columns []*Column
	rows    int
}

// New builds a dataset from a header and its records. A cell equal to one of
// nullValues is missing.
func New(name string, header []string, records [][]string, nullValues []string) (*Dataset, error) {
	if dup, ok := slices.FindDuplicate(header); ok {
		return nil, fmt.Errorf("dataset %s has duplicate column %q", name, dup)
	}

	nulls := make(map[string]struct{}, len(nullValues))
	for _, v := range nullValues {
		nulls[v] = struct{}{}
	}

	d := &Dataset{
		Name:    name,
		columns: make([]*Column, len(header)),
		rows:    len(records),
	}
	for i, h := range header {
		d.columns[i] = &Column{
			Name:    h,
			cells:   make([]string, len(records)),
			missing: make([]bool, len(records)),
		}
	}

	for row, record := range records {
		if len(record) != len(header) {
			return nil, fmt.Errorf("dataset %s row %d has %d fields, expected %d", name, row, len(record), len(header))
		}

		for i, cell := range record {
			_, isNull := nulls[cell]
			d.columns[i].cells[row] = cell
			d.columns[i].missing[row] = isNull
		}
	}

	return d, nil
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return d.rows
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// IsEmpty returns whether the dataset has no columns left.
func (d *Dataset) IsEmpty() bool {
	return len(d.columns) == 0
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}

	return names
}

// Columns returns the columns in order.
func (d *Dataset) Columns() []*Column {
	return d.columns
}

// Column returns the column by name.
func (d *Dataset) Column(name string) (*Column, bool) {
	for _, c := range d.columns {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}

// ReplaceSentinel marks every cell equal to sentinel as missing and returns
// the number of replaced cells.
func (d *Dataset) ReplaceSentinel(sentinel string) int {
	var replaced int
	for _, c := range d.columns {
		for i := 0; i < c.Len(); i++ {
			if !c.IsMissing(i) && c.Cell(i) == sentinel {
				c.missing[i] = true
				replaced++
			}
		}
	}

	return replaced
}

// DropColumns removes the named columns in place, unknown names are ignored.
func (d *Dataset) DropColumns(names ...string) {
	if len(names) == 0 {
		return
	}

	d.columns = slices.Filter(d.columns, func(c *Column) bool {
		return !slices.Contains(names, c.Name)
	})
}

// ConvertToFloat parses every column except the excluded ones as float64.
// A non-missing cell that is not a number fails the conversion.
func (d *Dataset) ConvertToFloat(exclude ...string) error {
	for _, c := range d.columns {
		if slices.Contains(exclude, c.Name) || c.IsFloat() {
			continue
		}

		floats := make([]float64, len(c.cells))
		for i := 0; i < c.Len(); i++ {
			if c.IsMissing(i) {
				floats[i] = math.NaN()
				continue
			}

			cell := c.Cell(i)

			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				var numErr *strconv.NumError
				if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
					floats[i] = v
					continue
				}

				return dferrors.Newf(dferrors.CodeCoercion, "dataset %s column %q row %d: can not convert %q to float", d.Name, c.Name, i, cell)
			}
			floats[i] = v
		}

		c.floats = floats
	}

	return nil
}
