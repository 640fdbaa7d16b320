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
Package expr defines the column expression tree shared by every colexpr package.

A tree is built from four node kinds and is immutable once constructed:

	Literal   - a typed scalar constant (types.Scalar)
	ColumnRef - a reference to an input column by name
	Call      - a function or operator applied to positional and named arguments
	Handle    - an opaque engine reference returned by the evaluation bridge

Operators are ordinary calls whose function name is one of the Op constants
(OpAdd, OpEq, OpAlias, ...), so the registry, the resolver and the engines
treat them the same way as named functions.

# Building Trees

Trees are normally built through the functions package, which validates
arity and argument policies:

	call, err := resolver.Resolve("upper", "name")

They can also be parsed from SQL expression text:

	node, err := expr.Parse("CASE WHEN temperature > 30 THEN 'hot' ELSE 'cold' END", nil)

Parse creates every call through a BuildFunc. Passing nil builds raw calls;
passing a function backed by a resolver validates each call as it is parsed.

# Operator Precedence

 1. Field and item access (a.b, a[i])
 2. Unary minus
 3. Multiplication, Division, Modulo (*, /, %)
 4. Addition, Subtraction (+, -)
 5. Comparison (=, ==, !=, <>, <, <=, >, >=) and IS [NOT] NULL
 6. NOT
 7. AND
 8. OR (lowest)

CASE expressions become nested when/otherwise calls. CAST(x AS type) becomes
a cast call and a trailing "AS name" becomes an alias call.

# Inspection

Equal compares trees structurally, Walk visits nodes in pre-order, Columns
lists referenced columns, Depth measures nesting and ToMap converts a tree
into plain maps for JSON or YAML output. String renders SQL text.
*/
package expr
