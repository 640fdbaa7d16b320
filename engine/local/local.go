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

package local

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/text/unicode/norm"

	"github.com/rulego/colexpr/engine"
	ast "github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/functions"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/utils/fieldpath"
)

// 本地引擎不支持的标量函数及原因
var unsupported = map[string]string{
	"explode":          "generators produce multiple rows",
	"explode_outer":    "generators produce multiple rows",
	"posexplode":       "generators produce multiple rows",
	"posexplode_outer": "generators produce multiple rows",
	"json_tuple":       "generators produce multiple rows",
	"expr":             "parsing SQL text needs a SQL parser",
	"rand":             "non-deterministic functions are not evaluated locally",
	"randn":            "non-deterministic functions are not evaluated locally",
	"shuffle":          "non-deterministic functions are not evaluated locally",
}

// 输出列名中运算符的SQL写法
var sqlOperators = map[string]string{
	ast.OpAdd: "+",
	ast.OpSub: "-",
	ast.OpMul: "*",
	ast.OpDiv: "/",
	ast.OpMod: "%",
	ast.OpEq:  "=",
	ast.OpNe:  "!=",
	ast.OpLt:  "<",
	ast.OpLe:  "<=",
	ast.OpGt:  ">",
	ast.OpGe:  ">=",
	ast.OpAnd: "AND",
	ast.OpOr:  "OR",
}

// Engine evaluates column expressions row by row. References are compiled
// to expr-lang programs whose functions are the engine builtins.
type Engine struct {
	registry *functions.Registry
	logger   logger.Logger
	loc      *time.Location
	now      func() time.Time
	// 非空时列引用必须在其中
	schema []string

	ids      atomic.Int64
	windows  sync.Map
	programs sync.Map

	compileOnce sync.Once
	compileOpts []expr.Option
}

var _ engine.Engine = (*Engine)(nil)

// New 创建本地引擎
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: functions.Default(),
		logger:   logger.GetDefault(),
		loc:      time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the catalog calls are checked against
func (e *Engine) Registry() *functions.Registry {
	return e.registry
}

// Location is the session time zone
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Literal implements engine.Engine
func (e *Engine) Literal(value types.Scalar) (engine.Ref, error) {
	v := value
	return &Expression{source: renderScalar(value), name: value.Text(), constant: &v}, nil
}

// Column implements engine.Engine
func (e *Engine) Column(name string) (engine.Ref, error) {
	name = norm.NFC.String(name)
	if name == "" {
		return nil, engine.Reject("AnalysisException", "column name must not be empty")
	}
	if e.schema != nil && !e.hasColumn(name) {
		return nil, engine.Reject("AnalysisException", "cannot resolve '`%s`' given input columns: [%s]",
			name, strings.Join(e.schema, ", "))
	}
	return &Expression{source: column(name), name: name, named: true}, nil
}

// hasColumn 嵌套路径 a.b[0] 按首段匹配 schema
func (e *Engine) hasColumn(name string) bool {
	root := name
	if isPath(name) {
		if parts, err := fieldpath.Parse(name); err == nil && parts[0].Kind == fieldpath.PartField {
			root = parts[0].Name
		}
	}
	for _, c := range e.schema {
		if c == name || c == root {
			return true
		}
	}
	return false
}

// Call implements engine.Engine
func (e *Engine) Call(ctx context.Context, function string, args []engine.Ref, options types.OptionsMap) (engine.Ref, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in, err := expressions(args)
	if err != nil {
		return nil, err
	}
	d, ok := e.registry.Lookup(function)
	if !ok {
		msg := fmt.Sprintf("undefined function: '%s'", function)
		if s := e.registry.Suggest(function); len(s) > 0 {
			msg += fmt.Sprintf("; did you mean %s?", strings.Join(s, ", "))
		}
		return nil, engine.Reject("UndefinedFunction", "%s", msg)
	}
	if d.DeprecatedFor != "" {
		if r, ok := e.registry.Lookup(d.DeprecatedFor); ok {
			d = r
		}
	}
	if err := d.ValidateArgCount(len(in)); err != nil {
		return nil, engine.Reject("AnalysisException", "%s", err.Error())
	}
	switch {
	case d.Category == functions.CategoryAggregate:
		return nil, engine.Reject("UnsupportedOperation", "aggregate function %s needs a grouping context", d.Name)
	case d.Category == functions.CategoryWindow:
		return nil, engine.Reject("UnsupportedOperation", "window function %s needs a window specification", d.Name)
	case d.Group == functions.TypeSort:
		return nil, engine.Reject("UnsupportedOperation", "sort expression %s can only be used for ordering", d.Name)
	}
	if reason, ok := unsupported[d.Name]; ok {
		return nil, engine.Reject("UnsupportedOperation", "%s is not supported: %s", d.Name, reason)
	}
	if options.Len() > 0 && !d.Options {
		return nil, engine.Reject("AnalysisException", "%s does not accept options", d.Name)
	}

	switch d.Name {
	case ast.OpAlias:
		return e.alias(in)
	case ast.OpIsNull:
		return &Expression{source: "(" + in[0].source + " == nil)", name: "(" + in[0].name + " IS NULL)"}, nil
	case ast.OpIsNotNull:
		return &Expression{source: "(" + in[0].source + " != nil)", name: "(" + in[0].name + " IS NOT NULL)"}, nil
	case "when":
		return e.when(in)
	case "otherwise":
		return e.otherwise(in)
	case "window":
		if err := e.checkWindow(in[1:]); err != nil {
			return nil, err
		}
	}

	b, ok := builtins[builtinName(d.Name)]
	if !ok {
		return nil, engine.Reject("UnsupportedOperation", "%s has no local implementation", d.Name)
	}
	srcs := make([]string, 0, len(in)+2)
	switch d.Name {
	case "struct", "arrays_zip":
		srcs = append(srcs, fieldNames(in))
	}
	for _, x := range in {
		srcs = append(srcs, x.source)
	}
	if d.Options {
		srcs = append(srcs, renderOptions(options))
	}
	out := &Expression{source: call(b.name, srcs...), name: displayName(d.Name, in)}
	e.logger.Debug("local engine compiled %s as %s", out.name, out.source)
	return out, nil
}

func expressions(args []engine.Ref) ([]*Expression, error) {
	out := make([]*Expression, len(args))
	for i, a := range args {
		x, err := asExpression(a)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func asExpression(ref engine.Ref) (*Expression, error) {
	switch r := ref.(type) {
	case *Expression:
		return r, nil
	case *ast.Handle:
		return asExpression(r.Ref())
	}
	return nil, engine.Reject("AnalysisException", "reference %T was not created by the local engine", ref)
}

func (e *Engine) alias(in []*Expression) (engine.Ref, error) {
	c, ok := in[1].Constant()
	if !ok || c.Kind() != types.KindString {
		return nil, engine.Reject("AnalysisException", "alias name must be a string literal")
	}
	name := c.Value().(string)
	return &Expression{source: in[0].source, name: name, named: true, constant: in[0].constant}, nil
}

func (e *Engine) when(in []*Expression) (engine.Ref, error) {
	br := branch{cond: call("truthy", in[0].source), value: in[1].source}
	return &Expression{
		source:   "(" + br.cond + " ? " + br.value + " : nil)",
		name:     "CASE WHEN " + in[0].name + " THEN " + in[1].name + " END",
		branches: []branch{br},
	}, nil
}

func (e *Engine) otherwise(in []*Expression) (engine.Ref, error) {
	if len(in[0].branches) == 0 {
		return nil, engine.Reject("AnalysisException", "otherwise() can only be applied on a Column previously generated by when()")
	}
	src := in[1].source
	for i := len(in[0].branches) - 1; i >= 0; i-- {
		br := in[0].branches[i]
		src = "(" + br.cond + " ? " + br.value + " : " + src + ")"
	}
	name := strings.TrimSuffix(in[0].name, " END") + " ELSE " + in[1].name + " END"
	return &Expression{source: src, name: name}, nil
}

// checkWindow 构造期验证窗口时长并预热缓存
func (e *Engine) checkWindow(durations []*Expression) error {
	values := make([]interface{}, len(durations))
	for i, d := range durations {
		c, ok := d.Constant()
		if !ok {
			return engine.Reject("AnalysisException", "window durations must be literals")
		}
		values[i] = c.Value()
	}
	if _, err := e.assigner(values); err != nil {
		return engine.Reject("AnalysisException", "%s", err.Error())
	}
	return nil
}

// fieldNames 结构字段名：有名字的参数用其名字，否则为colN
func fieldNames(in []*Expression) string {
	names := make([]string, len(in))
	for i, x := range in {
		if x.named {
			names[i] = quote(x.name)
		} else {
			names[i] = quote(fmt.Sprintf("col%d", i+1))
		}
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func renderOptions(options types.OptionsMap) string {
	keys := options.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		v, _ := options.Get(k)
		parts[i] = quote(k) + ": " + quote(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func displayName(function string, in []*Expression) string {
	names := make([]string, len(in))
	for i, x := range in {
		names[i] = x.name
	}
	if sym, ok := sqlOperators[function]; ok && len(in) == 2 {
		return "(" + names[0] + " " + sym + " " + names[1] + ")"
	}
	switch function {
	case ast.OpNot:
		return "(NOT " + names[0] + ")"
	case ast.OpNegate:
		return "(- " + names[0] + ")"
	case ast.OpCast:
		return "CAST(" + names[0] + " AS " + strings.ToUpper(names[1]) + ")"
	case ast.OpGetField:
		return names[0] + "." + names[1]
	case ast.OpGetItem:
		return names[0] + "[" + names[1] + "]"
	}
	return function + "(" + strings.Join(names, ", ") + ")"
}

// Evaluate computes ref over one row. ref is an *Expression or a handle
// wrapping one.
func (e *Engine) Evaluate(ctx context.Context, ref engine.Ref, row map[string]interface{}) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	x, err := asExpression(ref)
	if err != nil {
		return nil, err
	}
	program, err := e.program(x.source)
	if err != nil {
		return nil, err
	}
	env := map[string]interface{}{rowVar: normalizeRow(row)}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", x.name, err)
	}
	return normalize(out), nil
}

// Select evaluates refs over every row; each output row is keyed by the
// expression names.
func (e *Engine) Select(ctx context.Context, rows []map[string]interface{}, refs ...engine.Ref) ([]map[string]interface{}, error) {
	exprs, err := expressions(refs)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		result := make(map[string]interface{}, len(exprs))
		for _, x := range exprs {
			v, err := e.Evaluate(ctx, x, row)
			if err != nil {
				return nil, err
			}
			result[x.name] = v
		}
		out = append(out, result)
	}
	return out, nil
}

// program 编译结果按源码缓存
func (e *Engine) program(source string) (*vm.Program, error) {
	if p, ok := e.programs.Load(source); ok {
		return p.(*vm.Program), nil
	}
	e.compileOnce.Do(func() {
		e.compileOpts = e.functionOptions()
	})
	p, err := expr.Compile(source, e.compileOpts...)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", source, err)
	}
	actual, _ := e.programs.LoadOrStore(source, p)
	return actual.(*vm.Program), nil
}

func normalizeRow(row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for k, v := range row {
		out[norm.NFC.String(k)] = normalize(v)
	}
	return out
}
