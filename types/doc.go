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
Package types provides the value and error types shared by the expression,
function catalog, window and engine packages.

# Scalars

Scalar is the typed literal carried by expression trees. The set of kinds is
closed: null, boolean, integer, float, string, binary, date and timestamp.

	s := types.StringScalar("it's")
	s.SQL()  // 'it''s'
	s.Text() // it's

Binary scalars copy their input and return copies, so a literal cannot change
after it was built.

# Options

OptionsMap is the ordered string to string map format functions such as
from_json or to_csv receive at the engine boundary. With returns a new map
and leaves the receiver untouched.

# Time Slots

TimeSlot is the half-open bucket [Start, End) a window assigns a row to.
ToStruct gives the {start, end} struct a window column yields per row.

# Errors

Every construction error implements TypedError:

	ArityError                 argument count outside the function's range
	UnsupportedLiteralError    Go value with no scalar kind
	InsufficientArgumentsError function specific minimum not met
	UnsupportedWindowUnitError month or year based window interval
	UnknownFunctionError       name not in the catalog, with suggestions
	InvalidArgumentError       argument of the wrong shape
	EngineRejectedExpression   engine refused a submitted tree

Use errors.As to recover the concrete type through wrapping.

# Configuration

Config holds the builder settings: deprecation notices, flattening of a
single collection argument, the maximum tree depth accepted at submission and
the session time zone.
*/
package types
