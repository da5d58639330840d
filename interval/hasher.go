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
	"encoding/binary"

	"github.com/twmb/murmur3"

	"github.com/chartdata/chartdata-go/common"
	"github.com/chartdata/chartdata-go/internal"
)

const (
	DefaultHashSeed = uint64(9001)
)

var _ common.Hasher[Range] = RangeHasher{}

// RangeHasher computes a seeded murmur3 hash over the bounds of a Range.
// Ranges that are Equal hash identically.
type RangeHasher struct {
	seed uint64
}

// NewRangeHasher returns a hasher using the given seed.
func NewRangeHasher(seed uint64) RangeHasher {
	return RangeHasher{seed: seed}
}

func (h RangeHasher) Seed() uint64 {
	return h.seed
}

func (h RangeHasher) Hash(item Range) uint64 {
	var scratch [16]byte
	binary.LittleEndian.PutUint64(scratch[:8], internal.CanonicalBits(item.lower))
	binary.LittleEndian.PutUint64(scratch[8:], internal.CanonicalBits(item.upper))
	return murmur3.SeedSum64(h.seed, scratch[:])
}
