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
	"fmt"
	"time"

	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/utils/timex"
)

const (
	TypeTumbling = "tumbling"
	TypeSliding  = "sliding"
)

// Spec describes a time window: buckets [s, s+Length) where s ≡ StartOffset (mod Slide),
// measured from the Unix epoch.
type Spec struct {
	Length      time.Duration
	Slide       time.Duration
	StartOffset time.Duration
}

// NewSpec builds a Spec from interval strings. An empty slide makes the window
// tumbling, an empty start means no offset.
func NewSpec(length, slide, start string) (Spec, error) {
	var spec Spec
	var err error
	if spec.Length, err = ParseInterval(length); err != nil {
		return Spec{}, err
	}
	spec.Slide = spec.Length
	if slide != "" {
		if spec.Slide, err = ParseInterval(slide); err != nil {
			return Spec{}, err
		}
	}
	if start != "" {
		if spec.StartOffset, err = ParseInterval(start); err != nil {
			return Spec{}, err
		}
	}
	return spec, spec.Validate()
}

// Validate checks Length > 0 and 0 < Slide <= Length. A zero Slide is read as
// tumbling by Normalize, so Validate accepts it.
func (s Spec) Validate() error {
	if s.Length <= 0 {
		return &types.InvalidArgumentError{Function: "window", Position: 1,
			Message: fmt.Sprintf("window duration must be positive, got %s", s.Length)}
	}
	if s.Slide < 0 {
		return &types.InvalidArgumentError{Function: "window", Position: 2,
			Message: fmt.Sprintf("slide duration must be positive, got %s", s.Slide)}
	}
	if s.Slide > s.Length {
		return &types.InvalidArgumentError{Function: "window", Position: 2,
			Message: fmt.Sprintf("slide duration %s must be less than or equal to the window duration %s", s.Slide, s.Length)}
	}
	return nil
}

// Normalize fills the tumbling default and reduces the offset into [0, Slide)
func (s Spec) Normalize() Spec {
	if s.Slide == 0 {
		s.Slide = s.Length
	}
	if s.Slide > 0 {
		s.StartOffset = time.Duration(timex.FloorMod(int64(s.StartOffset), int64(s.Slide)))
	}
	return s
}

// IsTumbling reports whether buckets never overlap
func (s Spec) IsTumbling() bool {
	return s.Slide == 0 || s.Slide == s.Length
}

func (s Spec) String() string {
	n := s.Normalize()
	if n.IsTumbling() {
		return fmt.Sprintf("tumbling(%s, start=%s)", n.Length, n.StartOffset)
	}
	return fmt.Sprintf("sliding(%s, slide=%s, start=%s)", n.Length, n.Slide, n.StartOffset)
}

// Assigner maps a timestamp to the buckets that contain it
type Assigner interface {
	// Assign returns the buckets containing t, ordered by start
	Assign(t time.Time) []types.TimeSlot
	Spec() Spec
}

// BucketStart returns the latest bucket start s <= t with s ≡ offset (mod slide).
// Floor arithmetic keeps pre-epoch timestamps in the right bucket.
func BucketStart(t time.Time, spec Spec) time.Time {
	spec = spec.Normalize()
	return timex.Align(t, spec.Slide, spec.StartOffset)
}

// GetTimestamp extracts the event time of a row value
func GetTimestamp(data interface{}) (time.Time, bool) {
	switch v := data.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case interface{ GetTimestamp() time.Time }:
		return v.GetTimestamp(), true
	}
	return time.Time{}, false
}
