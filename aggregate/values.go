/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package aggregate

import (
	"fmt"
	"math"

	"github.com/chartdata/chartdata-go/common"
)

var (
	ErrNilArray         = fmt.Errorf("%w: nil array", common.ErrInvalidArgument)
	ErrNilData          = fmt.Errorf("%w: nil data", common.ErrInvalidArgument)
	ErrIndexOutOfRange  = fmt.Errorf("%w: index out of range", common.ErrInvalidArgument)
	ErrInvalidDimension = fmt.Errorf("%w: invalid table dimension", common.ErrInvalidArgument)
)

// Values2D is a table of optional numbers addressed by row and column index.
type Values2D interface {
	RowCount() int
	ColumnCount() int
	// Value returns the cell at (row, column), with false when the cell holds no value.
	Value(row, column int) (float64, bool)
}

// KeyedValues is an ordered sequence of optional numbers, each identified by a
// unique key.
type KeyedValues[K comparable] interface {
	ItemCount() int
	Key(index int) K
	// Value returns the item at index, with false when the item holds no value.
	Value(index int) (float64, bool)
}

type cell struct {
	value   float64
	present bool
}

// Table is a dense Values2D. Every cell starts absent.
type Table struct {
	rows    int
	columns int
	cells   []cell
}

// NewTable creates a table with the given dimensions.
func NewTable(rows, columns int) (*Table, error) {
	if rows < 0 || columns < 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrInvalidDimension, rows, columns)
	}
	if columns != 0 && rows > math.MaxInt/columns {
		return nil, fmt.Errorf("%w: %d x %d cells overflow", ErrInvalidDimension, rows, columns)
	}
	return &Table{
		rows:    rows,
		columns: columns,
		cells:   make([]cell, rows*columns),
	}, nil
}

// TableFromRows creates a table holding the given rows. The column count is
// the length of the longest row; missing trailing cells and nil rows are absent.
func TableFromRows(rows [][]float64) *Table {
	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	t := &Table{
		rows:    len(rows),
		columns: columns,
		cells:   make([]cell, len(rows)*columns),
	}
	for r, row := range rows {
		for c, v := range row {
			t.cells[r*columns+c] = cell{value: v, present: true}
		}
	}
	return t
}

func (t *Table) RowCount() int {
	return t.rows
}

func (t *Table) ColumnCount() int {
	return t.columns
}

// Value reports cells outside the table as absent.
func (t *Table) Value(row, column int) (float64, bool) {
	if !t.inBounds(row, column) {
		return 0, false
	}
	c := t.cells[row*t.columns+column]
	return c.value, c.present
}

// Set stores value at (row, column).
func (t *Table) Set(row, column int, value float64) error {
	if !t.inBounds(row, column) {
		return fmt.Errorf("%w: (%d, %d)", ErrIndexOutOfRange, row, column)
	}
	t.cells[row*t.columns+column] = cell{value: value, present: true}
	return nil
}

// Clear marks the cell at (row, column) as absent.
func (t *Table) Clear(row, column int) error {
	if !t.inBounds(row, column) {
		return fmt.Errorf("%w: (%d, %d)", ErrIndexOutOfRange, row, column)
	}
	t.cells[row*t.columns+column] = cell{}
	return nil
}

func (t *Table) inBounds(row, column int) bool {
	return row >= 0 && row < t.rows && column >= 0 && column < t.columns
}

type keyedValue[K comparable] struct {
	key     K
	value   float64
	present bool
}

// DefaultKeyedValues is a KeyedValues kept in insertion order.
type DefaultKeyedValues[K comparable] struct {
	items   []keyedValue[K]
	indices map[K]int
}

// NewDefaultKeyedValues creates an empty sequence.
func NewDefaultKeyedValues[K comparable]() *DefaultKeyedValues[K] {
	return &DefaultKeyedValues[K]{
		items:   make([]keyedValue[K], 0),
		indices: make(map[K]int),
	}
}

func (d *DefaultKeyedValues[K]) ItemCount() int {
	return len(d.items)
}

// Key returns the key at index, which must be in [0, ItemCount()).
func (d *DefaultKeyedValues[K]) Key(index int) K {
	return d.items[index].key
}

// Value returns the value at index, which must be in [0, ItemCount()).
func (d *DefaultKeyedValues[K]) Value(index int) (float64, bool) {
	item := d.items[index]
	return item.value, item.present
}

// Index returns the position of key, or -1 if the key is unknown.
func (d *DefaultKeyedValues[K]) Index(key K) int {
	if i, ok := d.indices[key]; ok {
		return i
	}
	return -1
}

// ValueForKey returns the value stored under key. The boolean is false when
// the key is unknown or its value is absent.
func (d *DefaultKeyedValues[K]) ValueForKey(key K) (float64, bool) {
	i, ok := d.indices[key]
	if !ok {
		return 0, false
	}
	return d.Value(i)
}

// Keys returns the keys in order.
func (d *DefaultKeyedValues[K]) Keys() []K {
	keys := make([]K, len(d.items))
	for i, item := range d.items {
		keys[i] = item.key
	}
	return keys
}

// AddValue appends key with value, or replaces the value in place if the key
// already exists.
func (d *DefaultKeyedValues[K]) AddValue(key K, value float64) {
	d.put(keyedValue[K]{key: key, value: value, present: true})
}

// AddAbsent appends key without a value, or clears the value of an existing key.
func (d *DefaultKeyedValues[K]) AddAbsent(key K) {
	d.put(keyedValue[K]{key: key})
}

// Remove deletes key and reports whether it was present.
func (d *DefaultKeyedValues[K]) Remove(key K) bool {
	i, ok := d.indices[key]
	if !ok {
		return false
	}
	d.items = append(d.items[:i], d.items[i+1:]...)
	delete(d.indices, key)
	for j := i; j < len(d.items); j++ {
		d.indices[d.items[j].key] = j
	}
	return true
}

// Equal reports whether other holds the same keys in the same order with the
// same values. Values are compared with ==.
func (d *DefaultKeyedValues[K]) Equal(other KeyedValues[K]) bool {
	if other == nil || d.ItemCount() != other.ItemCount() {
		return false
	}
	for i, item := range d.items {
		if item.key != other.Key(i) {
			return false
		}
		v, ok := other.Value(i)
		if ok != item.present || (ok && v != item.value) {
			return false
		}
	}
	return true
}

func (d *DefaultKeyedValues[K]) put(item keyedValue[K]) {
	if i, ok := d.indices[item.key]; ok {
		d.items[i] = item
		return
	}
	d.indices[item.key] = len(d.items)
	d.items = append(d.items, item)
}
