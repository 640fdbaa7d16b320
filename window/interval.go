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
	"math/big"
	"strings"
	"time"

	"github.com/rulego/colexpr/types"
)

// fixed-length units accepted in interval strings
var intervalUnits = map[string]time.Duration{
	"week":        7 * 24 * time.Hour,
	"day":         24 * time.Hour,
	"hour":        time.Hour,
	"minute":      time.Minute,
	"second":      time.Second,
	"millisecond": time.Millisecond,
	"microsecond": time.Microsecond,
	"nanosecond":  time.Nanosecond,
}

// calendar units without a fixed length
var calendarUnits = map[string]bool{
	"month":   true,
	"year":    true,
	"quarter": true,
	"decade":  true,
	"century": true,
}

// ParseInterval parses a window duration.
//
// Accepted forms:
//   - "5 seconds", "1 day 12 hours", "interval 10 minutes", "1.5 seconds", "-15 minutes"
//   - Go durations such as "5s" or "1h30m"
//
// Month and year based intervals fail with *types.UnsupportedWindowUnitError
// because their length depends on the calendar.
func ParseInterval(s string) (time.Duration, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	text = strings.TrimSpace(strings.TrimPrefix(text, "interval"))
	if text == "" {
		return 0, &types.InvalidArgumentError{Message: fmt.Sprintf("empty interval %q", s)}
	}
	if d, err := time.ParseDuration(text); err == nil {
		return d, nil
	}

	fields := strings.Fields(text)
	if len(fields)%2 != 0 {
		return 0, &types.InvalidArgumentError{Message: fmt.Sprintf("malformed interval %q: expected <number> <unit> pairs", s)}
	}
	total := new(big.Rat)
	for i := 0; i < len(fields); i += 2 {
		num, unitName := fields[i], strings.TrimSuffix(fields[i+1], "s")
		if calendarUnits[unitName] {
			return 0, &types.UnsupportedWindowUnitError{Interval: s, Unit: unitName + "s"}
		}
		unit, ok := intervalUnits[unitName]
		if !ok {
			return 0, &types.InvalidArgumentError{Message: fmt.Sprintf("unknown unit %q in interval %q", fields[i+1], s)}
		}
		r, ok := new(big.Rat).SetString(num)
		if !ok {
			return 0, &types.InvalidArgumentError{Message: fmt.Sprintf("invalid number %q in interval %q", num, s)}
		}
		total.Add(total, r.Mul(r, new(big.Rat).SetInt64(int64(unit))))
	}

	// sub-nanosecond remainders are truncated toward zero
	nanos := new(big.Int).Quo(total.Num(), total.Denom())
	if !nanos.IsInt64() {
		return 0, &types.InvalidArgumentError{Message: fmt.Sprintf("interval %q overflows", s)}
	}
	return time.Duration(nanos.Int64()), nil
}

// FormatInterval renders d in the "<n> <unit>" form accepted by ParseInterval,
// using the largest units first, e.g. 90*time.Minute -> "1 hour 30 minutes".
func FormatInterval(d time.Duration) string {
	if d == 0 {
		return "0 seconds"
	}
	var parts []string
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	for _, u := range []struct {
		name string
		size time.Duration
	}{
		{"week", 7 * 24 * time.Hour},
		{"day", 24 * time.Hour},
		{"hour", time.Hour},
		{"minute", time.Minute},
		{"second", time.Second},
		{"millisecond", time.Millisecond},
		{"microsecond", time.Microsecond},
		{"nanosecond", time.Nanosecond},
	} {
		if n := d / u.size; n > 0 {
			name := u.name
			if n > 1 {
				name += "s"
			}
			parts = append(parts, fmt.Sprintf("%s%d %s", sign, n, name))
			d -= n * u.size
		}
	}
	return strings.Join(parts, " ")
}
