/*
 * Copyright 2024 The RuleGo Authors.
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

// Ensure TumblingWindow implements the Assigner interface
var _ Assigner = (*TumblingWindow)(nil)

// TumblingWindow assigns every timestamp to exactly one fixed-size bucket
type TumblingWindow struct {
	spec Spec
}

// NewTumblingWindow creates a tumbling window of the given size and phase offset
func NewTumblingWindow(size, offset time.Duration) (*TumblingWindow, error) {
	spec := Spec{Length: size, Slide: size, StartOffset: offset}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &TumblingWindow{spec: spec.Normalize()}, nil
}

// Assign returns the single bucket containing t
func (w *TumblingWindow) Assign(t time.Time) []types.TimeSlot {
	return []types.TimeSlot{w.Slot(t)}
}

// Slot returns the bucket containing t
func (w *TumblingWindow) Slot(t time.Time) types.TimeSlot {
	start := BucketStart(t, w.spec)
	return types.NewTimeSlot(start, start.Add(w.spec.Length))
}

func (w *TumblingWindow) Spec() Spec {
	return w.spec
}
