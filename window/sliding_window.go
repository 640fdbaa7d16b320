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

package window

import (
	"time"

	"github.com/rulego/colexpr/types"
)

// Ensure SlidingWindow implements the Assigner interface
var _ Assigner = (*SlidingWindow)(nil)

// SlidingWindow assigns a timestamp to every overlapping bucket that contains it
type SlidingWindow struct {
	spec Spec
}

// NewSlidingWindow creates a sliding window instance
// size parameter represents the total window size, slide represents the sliding interval
func NewSlidingWindow(size, slide, offset time.Duration) (*SlidingWindow, error) {
	spec := Spec{Length: size, Slide: slide, StartOffset: offset}
	if slide <= 0 {
		return nil, &types.InvalidArgumentError{Function: "window", Position: 2, Message: "sliding window requires a positive slide"}
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &SlidingWindow{spec: spec.Normalize()}, nil
}

// Assign enumerates every start s with s <= t < s+size and s ≡ offset (mod slide),
// oldest bucket first. In steady state that is ceil(size/slide) buckets.
func (sw *SlidingWindow) Assign(t time.Time) []types.TimeSlot {
	last := BucketStart(t, sw.spec)
	var slots []types.TimeSlot
	for start := last; start.Add(sw.spec.Length).After(t); start = start.Add(-sw.spec.Slide) {
		slots = append(slots, types.NewTimeSlot(start, start.Add(sw.spec.Length)))
	}
	// reverse into ascending order
	for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
		slots[i], slots[j] = slots[j], slots[i]
	}
	return slots
}

// NextSlot returns the bucket one slide after slot
func (sw *SlidingWindow) NextSlot(slot types.TimeSlot) types.TimeSlot {
	return types.NewTimeSlot(slot.Start.Add(sw.spec.Slide), slot.End.Add(sw.spec.Slide))
}

func (sw *SlidingWindow) Spec() Spec {
	return sw.spec
}
