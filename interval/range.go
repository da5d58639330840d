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

package interval

import (
	"fmt"
	"math"

	"github.com/chartdata/chartdata-go/common"
	"github.com/chartdata/chartdata-go/internal"
)

var (
	ErrInvalidBounds  = fmt.Errorf("%w: lower bound must be <= upper bound", common.ErrInvalidArgument)
	ErrNegativeFactor = fmt.Errorf("%w: negative scaling factor", common.ErrInvalidArgument)
	ErrNilRange       = fmt.Errorf("%w: nil range", common.ErrInvalidArgument)
)

// Range is an immutable closed interval [lower, upper]. A nil *Range stands
// for an absent range wherever a function accepts one.
type Range struct {
	lower float64
	upper float64
}

// NewRange creates a range with the given bounds. NaN bounds are accepted.
func NewRange(lower, upper float64) (*Range, error) {
	if lower > upper {
		return nil, fmt.Errorf("%w: Range(%s, %s)", ErrInvalidBounds,
			internal.FormatDouble(lower), internal.FormatDouble(upper))
	}
	return &Range{lower: lower, upper: upper}, nil
}

// LowerBound returns the lower bound.
func (r *Range) LowerBound() float64 {
	return r.lower
}

// UpperBound returns the upper bound.
func (r *Range) UpperBound() float64 {
	return r.upper
}

// Length returns upper - lower.
func (r *Range) Length() float64 {
	return r.upper - r.lower
}

// CentralValue returns the midpoint (lower + upper) / 2.
func (r *Range) CentralValue() float64 {
	return (r.lower + r.upper) / 2.0
}

// Contains reports whether lower <= value <= upper. A NaN range contains nothing.
func (r *Range) Contains(value float64) bool {
	return value >= r.lower && value <= r.upper
}

// Intersects reports whether the closed interval [b0, b1] overlaps this range.
// Sharing a single boundary point counts as overlapping. An inverted interval
// (b1 < b0) overlaps nothing.
func (r *Range) Intersects(b0, b1 float64) bool {
	if r.IsNaNRange() || b1 < b0 {
		return false
	}
	return b0 <= r.upper && b1 >= r.lower
}

// IntersectsRange reports whether other overlaps this range. A nil range
// overlaps nothing.
func (r *Range) IntersectsRange(other *Range) bool {
	if other == nil {
		return false
	}
	return r.Intersects(other.lower, other.upper)
}

// Constrain returns the value within the range that is closest to value.
func (r *Range) Constrain(value float64) float64 {
	if r.Contains(value) {
		return value
	}
	if value > r.upper {
		return r.upper
	}
	if value < r.lower {
		return r.lower
	}
	return value
}

// IsNaNRange reports whether both bounds are NaN.
func (r *Range) IsNaNRange() bool {
	return math.IsNaN(r.lower) && math.IsNaN(r.upper)
}

// Equal reports whether other has the same bounds. Bounds are compared with
// ==, so a range holding a NaN bound equals nothing.
func (r *Range) Equal(other *Range) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.lower == other.lower && r.upper == other.upper
}

// HashCode returns a 32-bit hash consistent with Equal: 29*h(lower) + h(upper),
// where h folds the high word of a bound's bit pattern into the low word.
func (r *Range) HashCode() int32 {
	result := internal.FoldBits(r.lower)
	result = 29*result + internal.FoldBits(r.upper)
	return result
}

func (r *Range) String() string {
	return "Range[" + internal.FormatDouble(r.lower) + "," + internal.FormatDouble(r.upper) + "]"
}

// Combine returns the smallest range containing both a and b. If one of them
// is nil the other is returned; if both are nil the result is nil.
func Combine(a, b *Range) *Range {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &Range{
		lower: math.Min(a.lower, b.lower),
		upper: math.Max(a.upper, b.upper),
	}
}

// CombineIgnoringNaN is like Combine but treats a NaN range, and NaN bounds,
// as absent. It returns nil when no bound survives.
func CombineIgnoringNaN(a, b *Range) *Range {
	if a == nil {
		if b != nil && b.IsNaNRange() {
			return nil
		}
		return b
	}
	if b == nil {
		if a.IsNaNRange() {
			return nil
		}
		return a
	}
	lower := minIgnoringNaN(a.lower, b.lower)
	upper := maxIgnoringNaN(a.upper, b.upper)
	if math.IsNaN(lower) && math.IsNaN(upper) {
		return nil
	}
	return &Range{lower: lower, upper: upper}
}

// ExpandToInclude returns a range that spans r and value. A nil r yields the
// zero-length range [value, value].
func ExpandToInclude(r *Range, value float64) *Range {
	if r == nil {
		return &Range{lower: value, upper: value}
	}
	if value < r.lower {
		return &Range{lower: value, upper: r.upper}
	}
	if value > r.upper {
		return &Range{lower: r.lower, upper: value}
	}
	return r
}

// Expand widens r by a fraction of its length on each side. Negative margins
// shrink it; when they would push lower past upper the bounds collapse onto
// the midpoint of the crossed values.
func Expand(r *Range, lowerMargin, upperMargin float64) (*Range, error) {
	if r == nil {
		return nil, ErrNilRange
	}
	length := r.Length()
	lower := r.lower - length*lowerMargin
	upper := r.upper + length*upperMargin
	if lower > upper {
		lower = lower/2.0 + upper/2.0
		upper = lower
	}
	return &Range{lower: lower, upper: upper}, nil
}

// Shift moves both bounds of base by delta without letting either bound cross
// zero.
func Shift(base *Range, delta float64) (*Range, error) {
	return ShiftWithZeroCrossing(base, delta, false)
}

// ShiftWithZeroCrossing moves both bounds of base by delta. When
// allowZeroCrossing is false a bound that would change sign stops at 0.0.
func ShiftWithZeroCrossing(base *Range, delta float64, allowZeroCrossing bool) (*Range, error) {
	if base == nil {
		return nil, ErrNilRange
	}
	if allowZeroCrossing {
		return &Range{lower: base.lower + delta, upper: base.upper + delta}, nil
	}
	return &Range{
		lower: shiftWithNoZeroCrossing(base.lower, delta),
		upper: shiftWithNoZeroCrossing(base.upper, delta),
	}, nil
}

// Scale multiplies both bounds of base by factor.
func Scale(base *Range, factor float64) (*Range, error) {
	if base == nil {
		return nil, ErrNilRange
	}
	if factor < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeFactor, internal.FormatDouble(factor))
	}
	return &Range{lower: base.lower * factor, upper: base.upper * factor}, nil
}

func shiftWithNoZeroCrossing(value, delta float64) float64 {
	if value > 0.0 {
		return math.Max(value+delta, 0.0)
	}
	if value < 0.0 {
		return math.Min(value+delta, 0.0)
	}
	return value + delta
}

func minIgnoringNaN(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

func maxIgnoringNaN(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}
