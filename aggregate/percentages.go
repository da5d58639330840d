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

// CumulativePercentages returns a sequence with the same keys as data where
// each value is the running total up to and including that item divided by
// the total of all items. Absent values count as zero, so a sequence whose
// values sum to zero yields NaN ratios.
func CumulativePercentages[K comparable](data KeyedValues[K]) (*DefaultKeyedValues[K], error) {
	if data == nil {
		return nil, ErrNilData
	}
	if kv, ok := data.(*DefaultKeyedValues[K]); ok && kv == nil {
		return nil, ErrNilData
	}

	n := data.ItemCount()
	total := 0.0
	for i := 0; i < n; i++ {
		if v, ok := data.Value(i); ok {
			total += v
		}
	}

	result := NewDefaultKeyedValues[K]()
	runningTotal := 0.0
	for i := 0; i < n; i++ {
		if v, ok := data.Value(i); ok {
			runningTotal += v
		}
		result.AddValue(data.Key(i), runningTotal/total)
	}
	return result, nil
}
