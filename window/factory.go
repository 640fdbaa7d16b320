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

// CreateWindow picks the tumbling or sliding implementation for spec
func CreateWindow(spec Spec) (Assigner, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = spec.Normalize()
	if spec.IsTumbling() {
		return NewTumblingWindow(spec.Length, spec.StartOffset)
	}
	return NewSlidingWindow(spec.Length, spec.Slide, spec.StartOffset)
}

// Assign is a shortcut for CreateWindow followed by Assign
func Assign(t time.Time, spec Spec) ([]types.TimeSlot, error) {
	w, err := CreateWindow(spec)
	if err != nil {
		return nil, err
	}
	return w.Assign(t), nil
}

// TypeOf returns TypeTumbling or TypeSliding
func TypeOf(spec Spec) string {
	if spec.IsTumbling() {
		return TypeTumbling
	}
	return TypeSliding
}
