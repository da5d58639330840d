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

// ColumnTotal sums the values in a column over every row. Absent cells count
// as zero. The column index is handed to the data source unchecked.
func ColumnTotal(data Values2D, column int) float64 {
	total := 0.0
	rowCount := data.RowCount()
	for r := 0; r < rowCount; r++ {
		if v, ok := data.Value(r, column); ok {
			total += v
		}
	}
	return total
}

// ColumnTotalOf sums the values in a column over the listed rows, in the
// order given. Rows outside [0, RowCount()) are skipped without being queried.
func ColumnTotalOf(data Values2D, column int, validRows []int) float64 {
	total := 0.0
	rowCount := data.RowCount()
	for _, r := range validRows {
		if r < 0 || r >= rowCount {
			continue
		}
		if v, ok := data.Value(r, column); ok {
			total += v
		}
	}
	return total
}

// RowTotal sums the values in a row over every column. Absent cells count as
// zero. The row index is handed to the data source unchecked.
func RowTotal(data Values2D, row int) float64 {
	total := 0.0
	columnCount := data.ColumnCount()
	for c := 0; c < columnCount; c++ {
		if v, ok := data.Value(row, c); ok {
			total += v
		}
	}
	return total
}

// RowTotalOf sums the values in a row over the listed columns, in the order
// given. Columns outside [0, ColumnCount()) are skipped without being queried.
func RowTotalOf(data Values2D, row int, validCols []int) float64 {
	total := 0.0
	columnCount := data.ColumnCount()
	for _, c := range validCols {
		if c < 0 || c >= columnCount {
			continue
		}
		if v, ok := data.Value(row, c); ok {
			total += v
		}
	}
	return total
}

// Total sums every element of a jagged array. Nil rows contribute nothing.
func Total(data [][]float64) float64 {
	total := 0.0
	for _, row := range data {
		for _, v := range row {
			total += v
		}
	}
	return total
}
