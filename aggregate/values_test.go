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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartdata/chartdata-go/common"
)

func TestTable(t *testing.T) {
	t.Run("New Table Is Absent", func(t *testing.T) {
		table, err := NewTable(2, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, table.RowCount())
		assert.Equal(t, 3, table.ColumnCount())
		for r := 0; r < 2; r++ {
			for c := 0; c < 3; c++ {
				_, ok := table.Value(r, c)
				assert.False(t, ok)
			}
		}
	})

	t.Run("Negative Dimensions", func(t *testing.T) {
		_, err := NewTable(-1, 3)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("Cell Count Overflow", func(t *testing.T) {
		table, err := NewTable(1<<32, 1<<32)
		assert.Nil(t, table)
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = NewTable(math.MaxInt, 2)
		assert.ErrorIs(t, err, ErrInvalidDimension)

		table, err = NewTable(math.MaxInt, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, table.ColumnCount())
	})

	t.Run("Set And Clear", func(t *testing.T) {
		table, err := NewTable(2, 2)
		require.NoError(t, err)
		require.NoError(t, table.Set(1, 0, 2.5))

		v, ok := table.Value(1, 0)
		assert.True(t, ok)
		assert.Equal(t, 2.5, v)

		require.NoError(t, table.Clear(1, 0))
		_, ok = table.Value(1, 0)
		assert.False(t, ok)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		table, err := NewTable(2, 2)
		require.NoError(t, err)
		assert.ErrorIs(t, table.Set(2, 0, 1), ErrIndexOutOfRange)
		assert.ErrorIs(t, table.Clear(0, -1), ErrIndexOutOfRange)
		_, ok := table.Value(5, 5)
		assert.False(t, ok)
		_, ok = table.Value(-1, 0)
		assert.False(t, ok)
	})

	t.Run("From Jagged Rows", func(t *testing.T) {
		table := TableFromRows([][]float64{{1, 2, 3}, nil, {4}})
		assert.Equal(t, 3, table.RowCount())
		assert.Equal(t, 3, table.ColumnCount())

		v, ok := table.Value(0, 2)
		assert.True(t, ok)
		assert.Equal(t, 3.0, v)
		_, ok = table.Value(1, 0)
		assert.False(t, ok)
		_, ok = table.Value(2, 1)
		assert.False(t, ok)
	})
}

func TestDefaultKeyedValues(t *testing.T) {
	t.Run("Insertion Order", func(t *testing.T) {
		kv := NewDefaultKeyedValues[string]()
		kv.AddValue("b", 2)
		kv.AddValue("a", 1)
		kv.AddAbsent("c")

		assert.Equal(t, 3, kv.ItemCount())
		assert.Equal(t, []string{"b", "a", "c"}, kv.Keys())
		assert.Equal(t, "a", kv.Key(1))
		assert.Equal(t, 2, kv.Index("c"))
		assert.Equal(t, -1, kv.Index("z"))

		_, ok := kv.Value(2)
		assert.False(t, ok)
		_, ok = kv.ValueForKey("z")
		assert.False(t, ok)
	})

	t.Run("Replace Keeps Position", func(t *testing.T) {
		kv := NewDefaultKeyedValues[string]()
		kv.AddValue("x", 1)
		kv.AddValue("y", 2)
		kv.AddValue("x", 10)
		assert.Equal(t, []string{"x", "y"}, kv.Keys())
		v, ok := kv.ValueForKey("x")
		assert.True(t, ok)
		assert.Equal(t, 10.0, v)

		kv.AddAbsent("y")
		_, ok = kv.ValueForKey("y")
		assert.False(t, ok)
		assert.Equal(t, 2, kv.ItemCount())
	})

	t.Run("Remove", func(t *testing.T) {
		kv := NewDefaultKeyedValues[int]()
		for i := 0; i < 4; i++ {
			kv.AddValue(i, float64(i*i))
		}
		assert.True(t, kv.Remove(1))
		assert.False(t, kv.Remove(1))
		assert.Equal(t, []int{0, 2, 3}, kv.Keys())
		assert.Equal(t, 1, kv.Index(2))
		assert.Equal(t, 2, kv.Index(3))
		v, ok := kv.ValueForKey(3)
		assert.True(t, ok)
		assert.Equal(t, 9.0, v)
	})

	t.Run("Equal", func(t *testing.T) {
		a := NewDefaultKeyedValues[string]()
		b := NewDefaultKeyedValues[string]()
		assert.True(t, a.Equal(b))

		a.AddValue("k", 1)
		assert.False(t, a.Equal(b))
		b.AddValue("k", 1)
		assert.True(t, a.Equal(b))

		a.AddAbsent("m")
		b.AddValue("m", 0)
		assert.False(t, a.Equal(b))

		assert.False(t, a.Equal(nil))
	})
}
