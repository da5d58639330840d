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
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/chartdata/chartdata-go/common"
	"github.com/chartdata/chartdata-go/internal"
)

const (
	digestAbsent  byte = 0
	digestPresent byte = 1
)

// ToNumberArray boxes every element of data into its own *float64. Integers
// wider than 53 bits are rounded to the nearest representable float64.
func ToNumberArray[T common.Number](data []T) ([]*float64, error) {
	if data == nil {
		return nil, ErrNilArray
	}
	return boxRow(data), nil
}

// ToNumberArray2D boxes every element of a jagged array, keeping row lengths.
// Nil rows stay nil. Elements are converted as in ToNumberArray.
func ToNumberArray2D[T common.Number](data [][]T) ([][]*float64, error) {
	if data == nil {
		return nil, ErrNilArray
	}
	result := make([][]*float64, len(data))
	for i, row := range data {
		if row != nil {
			result[i] = boxRow(row)
		}
	}
	return result, nil
}

// FromNumberArray unboxes data. Nil elements become NaN.
func FromNumberArray(data []*float64) []float64 {
	if data == nil {
		return nil
	}
	result := make([]float64, len(data))
	for i, v := range data {
		if v == nil {
			result[i] = math.NaN()
			continue
		}
		result[i] = *v
	}
	return result
}

// FromNumberArray2D unboxes a jagged array. Nil rows stay nil.
func FromNumberArray2D(data [][]*float64) [][]float64 {
	if data == nil {
		return nil
	}
	result := make([][]float64, len(data))
	for i, row := range data {
		result[i] = FromNumberArray(row)
	}
	return result
}

// ArraysEqual reports whether a and b have the same shape and elements.
// Elements are compared with ==, so NaN never matches. A nil row only equals
// another nil row.
func ArraysEqual(a, b [][]float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !rowsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// DeepClone copies source row by row. Nil rows stay nil and a nil source
// yields nil.
func DeepClone(source [][]float64) [][]float64 {
	if source == nil {
		return nil
	}
	clone := make([][]float64, len(source))
	for i, row := range source {
		if row != nil {
			clone[i] = make([]float64, len(row))
			copy(clone[i], row)
		}
	}
	return clone
}

// Digest hashes the shape and elements of data with xxhash64. Arrays that are
// ArraysEqual have equal digests.
func Digest(data [][]float64) uint64 {
	h := xxhash.New()
	var scratch [8]byte
	writeMarker := func(present bool, length int) {
		if !present {
			h.Write([]byte{digestAbsent})
			return
		}
		h.Write([]byte{digestPresent})
		binary.LittleEndian.PutUint64(scratch[:], uint64(length))
		h.Write(scratch[:])
	}

	writeMarker(data != nil, len(data))
	for _, row := range data {
		writeMarker(row != nil, len(row))
		for _, v := range row {
			binary.LittleEndian.PutUint64(scratch[:], internal.CanonicalBits(v))
			h.Write(scratch[:])
		}
	}
	return h.Sum64()
}

func boxRow[T common.Number](row []T) []*float64 {
	boxed := make([]*float64, len(row))
	for i, v := range row {
		f := float64(v)
		boxed[i] = &f
	}
	return boxed
}

func rowsEqual(a, b []float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
