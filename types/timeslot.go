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
	"fmt"
	"time"
)

// Field names of the struct a window call yields per row.
const (
	WindowStartField = "start"
	WindowEndField   = "end"
)

// TimeSlot is a half-open bucket [Start, End).
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

func NewTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{
		Start: start,
		End:   end,
	}
}

// Contains checks if given time is within slot range.
// The start is inclusive and the end is exclusive.
func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.Start) && t.Before(ts.End)
}

// Length returns End - Start
func (ts TimeSlot) Length() time.Duration {
	return ts.End.Sub(ts.Start)
}

// ToStruct returns the row value of a window column: a struct with start and end
func (ts TimeSlot) ToStruct() map[string]interface{} {
	return map[string]interface{}{
		WindowStartField: ts.Start,
		WindowEndField:   ts.End,
	}
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s, %s)", ts.Start.UTC().Format(time.RFC3339Nano), ts.End.UTC().Format(time.RFC3339Nano))
}
