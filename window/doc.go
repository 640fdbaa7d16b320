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

/*
Package window assigns timestamps to time buckets.

A window is described by a Spec: a bucket length, a slide and a start offset,
all anchored at the Unix epoch. Buckets are half-open, [start, start+length).

# Window Types

• Tumbling Windows - slide equals length, every timestamp lands in exactly one bucket
• Sliding Windows - slide smaller than length, a timestamp lands in ceil(length/slide) buckets

# Intervals

Durations are written the way SQL engines write them:

	spec, err := window.NewSpec("10 minutes", "5 minutes", "2 minutes")
	spec, err := window.NewSpec("1 hour", "", "")   // tumbling
	_, err := window.ParseInterval("1 month")       // *types.UnsupportedWindowUnitError

Go durations ("90s", "1h30m") are accepted as well. Calendar units (month,
quarter, year) have no fixed length and are rejected.

# Assignment

	w, _ := window.CreateWindow(spec)
	for _, slot := range w.Assign(ts) {
		fmt.Println(slot.Start, slot.End)
	}

Bucket starts use floor division, so timestamps before 1970 and negative
offsets are handled without special cases. Results keep the location of the
input timestamp.
*/
package window
