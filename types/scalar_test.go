/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScalarRendering(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 13, 0, 500, time.FixedZone("UTC+8", 8*3600))
	tests := []struct {
		name string
		s    Scalar
		kind Kind
		sql  string
		text string
	}{
		{"null", NullScalar(), KindNull, "NULL", "null"},
		{"bool", BoolScalar(true), KindBoolean, "TRUE", "true"},
		{"int", IntScalar(-3), KindInteger, "-3", "-3"},
		{"整数浮点", FloatScalar(2), KindFloat, "2.0", "2.0"},
		{"浮点", FloatScalar(0.25), KindFloat, "0.25", "0.25"},
		{"NaN", FloatScalar(math.NaN()), KindFloat, "NaN", "NaN"},
		{"引号转义", StringScalar("it's"), KindString, "'it''s'", "it's"},
		{"binary", BinaryScalar([]byte{0xca, 0xfe}), KindBinary, "X'CAFE'", "yv4="},
		{"date", DateScalar(Date{Year: 1969, Month: time.December, Day: 31}), KindDate, "DATE '1969-12-31'", "1969-12-31"},
		{"timestamp", TimestampScalar(ts), KindTimestamp, "TIMESTAMP '2024-05-01 01:13:00.0000005'", "2024-05-01T01:13:00.0000005Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.s.Kind())
			assert.Equal(t, tt.sql, tt.s.SQL())
			assert.Equal(t, tt.sql, tt.s.String())
			assert.Equal(t, tt.text, tt.s.Text())
		})
	}
}

func TestScalarEqual(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.In(time.FixedZone("X", 3600))

	assert.True(t, NullScalar().Equal(NullScalar()))
	assert.True(t, TimestampScalar(a).Equal(TimestampScalar(b)))
	assert.True(t, BinaryScalar([]byte("x")).Equal(BinaryScalar([]byte("x"))))
	assert.False(t, IntScalar(1).Equal(FloatScalar(1)))
	assert.False(t, StringScalar("a").Equal(StringScalar("b")))
	assert.True(t, NullScalar().IsNull())
	assert.False(t, IntScalar(0).IsNull())
}

func TestBinaryScalarCopies(t *testing.T) {
	raw := []byte("abc")
	s := BinaryScalar(raw)
	raw[0] = 'z'
	assert.Equal(t, []byte("abc"), s.Value())

	v := s.Value().([]byte)
	v[1] = 'z'
	assert.Equal(t, []byte("abc"), s.Value())
}

func TestDate(t *testing.T) {
	d := NewDate(time.Date(2024, 2, 29, 23, 59, 0, 0, time.FixedZone("X", -3600)))
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())
	assert.True(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC).Equal(d.Time()))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "timestamp", KindTimestamp.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
