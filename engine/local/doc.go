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
Package local is an in-process reference engine for column expressions.

It implements engine.Engine: every literal, column and call is compiled into
an expr-lang program whose functions are the engine builtins (registered
under a "fn_" prefix), and Evaluate runs that program against a single row.

	e := local.New(local.WithSchema("ts", "v"))
	b := engine.New(e)
	h, _ := b.Submit(ctx, call)
	v, _ := e.Evaluate(ctx, h, map[string]interface{}{"ts": ts, "v": 1})

Null handling follows SQL: unless a builtin declares otherwise, any null
argument makes the result null; and/or use three-valued logic. Casts that
cannot be performed produce null instead of failing.

Calls the engine cannot evaluate row by row (aggregates, window functions,
sort expressions, generators and non-deterministic functions) are rejected at
construction time with an UnsupportedOperation failure.

Values inside a row are normalized to nil, bool, int64, float64, string,
[]byte, time.Time, types.Date, []interface{} and map[string]interface{}.
Structs are maps keyed by field name; window() produces a struct with
"start" and "end" fields, or a list of them for sliding windows.
*/
package local
