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
	"testing"

	"github.com/stretchr/testify/mock"
)

type mockValues2D struct {
	mock.Mock
}

func newMockValues2D(t *testing.T) *mockValues2D {
	m := &mockValues2D{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockValues2D) RowCount() int {
	return m.Called().Int(0)
}

func (m *mockValues2D) ColumnCount() int {
	return m.Called().Int(0)
}

func (m *mockValues2D) Value(row, column int) (float64, bool) {
	args := m.Called(row, column)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *mockValues2D) expectRows(n int) {
	m.On("RowCount").Return(n).Once()
}

func (m *mockValues2D) expectColumns(n int) {
	m.On("ColumnCount").Return(n).Once()
}

func (m *mockValues2D) expectCell(row, column int, value float64) {
	m.On("Value", row, column).Return(value, true).Once()
}

func (m *mockValues2D) expectAbsent(row, column int) {
	m.On("Value", row, column).Return(0.0, false).Once()
}

type mockKeyedValues[K comparable] struct {
	mock.Mock
}

func newMockKeyedValues[K comparable](t *testing.T) *mockKeyedValues[K] {
	m := &mockKeyedValues[K]{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockKeyedValues[K]) ItemCount() int {
	return m.Called().Int(0)
}

func (m *mockKeyedValues[K]) Key(index int) K {
	return m.Called(index).Get(0).(K)
}

func (m *mockKeyedValues[K]) Value(index int) (float64, bool) {
	args := m.Called(index)
	return args.Get(0).(float64), args.Bool(1)
}

// expectItems stubs the sequence; a nil entry in values is an absent value.
func (m *mockKeyedValues[K]) expectItems(keys []K, values []*float64) {
	m.On("ItemCount").Return(len(keys))
	for i, k := range keys {
		m.On("Key", i).Return(k)
		if values[i] == nil {
			m.On("Value", i).Return(0.0, false)
			continue
		}
		m.On("Value", i).Return(*values[i], true)
	}
}

func ptr(v float64) *float64 {
	return &v
}
