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

package internal

import (
	"math"
	"strconv"
	"strings"
)

const (
	canonicalNaNBits = uint64(0x7ff8000000000000)
)

// CanonicalBits returns the IEEE-754 bit pattern of v with every NaN collapsed
// to a single pattern and -0.0 folded into 0.0.
func CanonicalBits(v float64) uint64 {
	if math.IsNaN(v) {
		return canonicalNaNBits
	}
	if v == 0 {
		return 0
	}
	return math.Float64bits(v)
}

// FoldBits folds the canonical bit pattern of v into 32 bits, xoring the high
// word into the low word.
func FoldBits(v float64) int32 {
	bits := CanonicalBits(v)
	return int32(uint32(bits ^ (bits >> 32)))
}

// FormatDouble renders v the way the JVM prints a double: plain notation with
// at least one fractional digit when 1e-3 <= |v| < 1e7, otherwise scientific
// notation with an upper-case 'E' and no '+' on the exponent.
func FormatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// the JVM prints the smallest subnormal with two digits
	if abs == math.SmallestNonzeroFloat64 {
		if v < 0 {
			return "-4.9E-324"
		}
		return "4.9E-324"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(exp)
}
