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
Package functions holds the function catalog and turns loosely typed call
arguments into expression nodes.

# Registry

Every callable is described by a Descriptor: its name, category (scalar,
aggregate or window), arity range and an argument policy per position. The
built-in catalog is a static table split by group (functions_math.go,
functions_string.go, ...) and built once on first use:

	d, ok := functions.Default().Lookup("substring_index")
	for _, d := range functions.Default().ListByCategory(functions.CategoryAggregate) {
		fmt.Println(d.Signature())
	}

Lookup is case sensitive. Unknown names fail with *types.UnknownFunctionError,
which carries close matches.

# Argument Policies

Each argument is classified once as an expression, a name (Go string) or a raw
value, then converted by the policy of its position:

	ColumnsMayBeStrings  name -> column reference, raw -> literal by Go type
	NumericOrColumn      name -> column reference, raw -> float literal
	LiteralOnly          name -> string literal, raw -> literal by Go type
	ExpressionOnly       only expressions are accepted

Expressions always pass through unchanged.

# Resolution

	r := functions.NewResolver(nil, functions.WithLogger(myLogger))
	call, err := r.Resolve("substring_index", "a.b.c.d", ".", 2)
	// substring_index('a.b.c.d', '.', 2)

Resolve checks function specific minimums (greatest/least), pops a trailing
options mapping for format functions, flattens a single collection argument for
struct/array/create_map/map_concat, checks arity, applies the policies and
runs the descriptor's validator. Deprecated names log one warning and build the
replacement call.
*/
package functions
