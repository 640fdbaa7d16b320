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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlot(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	ts := NewTimeSlot(start, end)

	assert.Equal(t, time.Hour, ts.Length())
	assert.Equal(t, "[2024-01-01T12:00:00Z, 2024-01-01T13:00:00Z)", ts.String())

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"起点包含", start, true},
		{"区间内", start.Add(30 * time.Minute), true},
		{"终点不包含", end, false},
		{"起点之前", start.Add(-time.Nanosecond), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ts.Contains(tt.at))
		})
	}
}

func TestTimeSlotToStruct(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	start := time.Date(1969, 12, 31, 23, 0, 0, 0, loc)
	ts := NewTimeSlot(start, start.Add(5*time.Minute))

	m := ts.ToStruct()
	assert.Len(t, m, 2)
	assert.Equal(t, start, m[WindowStartField])
	assert.Equal(t, start.Add(5*time.Minute), m[WindowEndField])
	// String 统一按UTC输出
	assert.Equal(t, "[1969-12-31T15:00:00Z, 1969-12-31T15:05:00Z)", ts.String())
}
