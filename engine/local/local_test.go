package local

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/colexpr/engine"
	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/functions"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/types"
)

type fixture struct {
	engine   *Engine
	bridge   *engine.Bridge
	resolver *functions.Resolver
}

func newFixture(opts ...Option) *fixture {
	rec := logger.NewRecorder(logger.DEBUG)
	e := New(append([]Option{WithLogger(rec)}, opts...)...)
	return &fixture{
		engine:   e,
		bridge:   engine.New(e, engine.WithLogger(rec)),
		resolver: functions.NewResolver(nil, functions.WithLogger(rec)),
	}
}

func col(name string) *expr.ColumnRef {
	return expr.NewColumnRef(name)
}

// build resolves and submits a call
func (f *fixture) build(t *testing.T, name string, args ...interface{}) *expr.Handle {
	t.Helper()
	h, err := f.submit(name, args...)
	require.NoError(t, err)
	return h
}

func (f *fixture) submit(name string, args ...interface{}) (*expr.Handle, error) {
	call, err := f.resolver.Resolve(name, args...)
	if err != nil {
		return nil, err
	}
	return f.bridge.Submit(context.Background(), call)
}

func (f *fixture) eval(t *testing.T, h *expr.Handle, row map[string]interface{}) interface{} {
	t.Helper()
	v, err := f.engine.Evaluate(context.Background(), h, row)
	require.NoError(t, err)
	return v
}

func rejection(t *testing.T, err error) *types.EngineRejectedExpression {
	t.Helper()
	require.Error(t, err)
	var rej *types.EngineRejectedExpression
	require.True(t, errors.As(err, &rej), "unexpected error %v", err)
	return rej
}

func TestOperators(t *testing.T) {
	f := newFixture()
	row := map[string]interface{}{"a": 7, "b": 2, "x": 0.5, "n": nil, "s": "3"}
	tests := []struct {
		name string
		op   string
		args []interface{}
		want interface{}
	}{
		{"int add", expr.OpAdd, []interface{}{col("a"), col("b")}, int64(9)},
		{"mixed add", expr.OpAdd, []interface{}{col("a"), col("x")}, 7.5},
		{"subtract", expr.OpSub, []interface{}{col("a"), 10}, int64(-3)},
		{"multiply", expr.OpMul, []interface{}{col("a"), col("b")}, int64(14)},
		{"divide is fractional", expr.OpDiv, []interface{}{col("a"), col("b")}, 3.5},
		{"divide by zero", expr.OpDiv, []interface{}{col("a"), 0}, nil},
		{"remainder", expr.OpMod, []interface{}{col("a"), 3}, int64(1)},
		{"null operand", expr.OpAdd, []interface{}{col("a"), col("n")}, nil},
		{"less", expr.OpLt, []interface{}{col("b"), col("a")}, true},
		{"string compared as number", expr.OpEq, []interface{}{col("s"), 3}, true},
		{"equal null", expr.OpEq, []interface{}{col("n"), 1}, nil},
		{"and false wins over null", expr.OpAnd, []interface{}{col("n"), false}, false},
		{"and null", expr.OpAnd, []interface{}{col("n"), true}, nil},
		{"or true wins over null", expr.OpOr, []interface{}{col("n"), true}, true},
		{"or null", expr.OpOr, []interface{}{col("n"), false}, nil},
		{"not", expr.OpNot, []interface{}{true}, false},
		{"negate", expr.OpNegate, []interface{}{col("a")}, int64(-7)},
		{"is null", expr.OpIsNull, []interface{}{col("n")}, true},
		{"missing column is null", expr.OpIsNull, []interface{}{col("missing")}, true},
		{"is not null", expr.OpIsNotNull, []interface{}{col("a")}, true},
		{"cast", expr.OpCast, []interface{}{col("s"), "int"}, int64(3)},
		{"cast failure is null", expr.OpCast, []interface{}{"abc", "int"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := f.build(t, tt.op, tt.args...)
			assert.Equal(t, tt.want, f.eval(t, h, row))
		})
	}
}

func TestNegativeLiterals(t *testing.T) {
	f := newFixture()
	h := f.build(t, expr.OpSub, -3, -4.5)
	assert.Equal(t, 1.5, f.eval(t, h, nil))
}

func TestWhenOtherwise(t *testing.T) {
	f := newFixture()
	cond, err := f.resolver.Resolve(expr.OpGe, col("age"), 18)
	require.NoError(t, err)
	when, err := f.resolver.Resolve("when", cond, "adult")
	require.NoError(t, err)

	h, err := f.bridge.Submit(context.Background(), when)
	require.NoError(t, err)
	assert.Equal(t, "adult", f.eval(t, h, map[string]interface{}{"age": 20}))
	assert.Nil(t, f.eval(t, h, map[string]interface{}{"age": 3}))

	h = f.build(t, "otherwise", when, "minor")
	assert.Equal(t, "adult", f.eval(t, h, map[string]interface{}{"age": 20}))
	assert.Equal(t, "minor", f.eval(t, h, map[string]interface{}{"age": 3}))
	// 条件为空时走otherwise分支
	assert.Equal(t, "minor", f.eval(t, h, map[string]interface{}{"age": nil}))
	assert.Equal(t, "CASE WHEN (age >= 18) THEN adult ELSE minor END", h.Ref().(*Expression).Name())

	upper, err := f.resolver.Resolve("upper", "name")
	require.NoError(t, err)
	_, err = f.submit("otherwise", upper, "x")
	rej := rejection(t, err)
	assert.Equal(t, "AnalysisException", rej.Name)
	assert.Contains(t, rej.Message, "otherwise() can only be applied on a Column previously generated by when()")
}

func TestMathFunctions(t *testing.T) {
	f := newFixture()
	row := map[string]interface{}{"x": 16, "y": -2.5, "z": 2.675}
	tests := []struct {
		function string
		args     []interface{}
		want     interface{}
	}{
		{"sqrt", []interface{}{"x"}, 4.0},
		{"abs", []interface{}{"y"}, 2.5},
		{"round", []interface{}{"z", 2}, 2.68},
		{"round", []interface{}{"y"}, -3.0},
		{"bround", []interface{}{"y"}, -2.0},
		{"ceil", []interface{}{"y"}, int64(-2)},
		{"floor", []interface{}{"y"}, int64(-3)},
		{"log2", []interface{}{"x"}, 4.0},
		{"log10", []interface{}{"y"}, nil},
		{"pow", []interface{}{"x", 0.5}, 4.0},
		{"signum", []interface{}{"y"}, -1.0},
		{"factorial", []interface{}{5}, int64(120)},
		{"hex", []interface{}{"x"}, "10"},
	}
	for _, tt := range tests {
		t.Run(tt.function, func(t *testing.T) {
			h := f.build(t, tt.function, tt.args...)
			assert.Equal(t, tt.want, f.eval(t, h, row))
		})
	}
}

func TestStringFunctions(t *testing.T) {
	f := newFixture()
	row := map[string]interface{}{"s": "hello world", "t": "  pad  ", "n": nil}
	tests := []struct {
		function string
		args     []interface{}
		want     interface{}
	}{
		{"upper", []interface{}{"s"}, "HELLO WORLD"},
		{"initcap", []interface{}{"s"}, "Hello World"},
		{"length", []interface{}{"s"}, int64(11)},
		{"trim", []interface{}{"t"}, "pad"},
		{"substring", []interface{}{"s", 1, 5}, "hello"},
		{"lpad", []interface{}{"n", 3, "0"}, nil},
		{"concat_ws", []interface{}{"-", "s", "n", "s"}, "hello world-hello world"},
		{"regexp_replace", []interface{}{"s", "o", "0"}, "hell0 w0rld"},
		{"instr", []interface{}{"s", "world"}, int64(7)},
		{"reverse", []interface{}{"s"}, "dlrow olleh"},
	}
	for _, tt := range tests {
		t.Run(tt.function, func(t *testing.T) {
			h := f.build(t, tt.function, tt.args...)
			assert.Equal(t, tt.want, f.eval(t, h, row))
		})
	}
}

func TestTumblingWindow(t *testing.T) {
	f := newFixture()
	h := f.build(t, "window", "ts", "5 seconds")

	ts := time.Date(2024, 1, 1, 9, 0, 7, 0, time.UTC)
	got, ok := f.eval(t, h, map[string]interface{}{"ts": ts}).(map[string]interface{})
	require.True(t, ok)
	assertTime(t, time.Date(2024, 1, 1, 9, 0, 5, 0, time.UTC), got[types.WindowStartField])
	assertTime(t, time.Date(2024, 1, 1, 9, 0, 10, 0, time.UTC), got[types.WindowEndField])

	// 纪元之前的时间同样向下取整
	ts = time.Date(1969, 12, 31, 23, 59, 58, 0, time.UTC)
	got, ok = f.eval(t, h, map[string]interface{}{"ts": ts}).(map[string]interface{})
	require.True(t, ok)
	assertTime(t, time.Date(1969, 12, 31, 23, 59, 55, 0, time.UTC), got[types.WindowStartField])

	assert.Nil(t, f.eval(t, h, map[string]interface{}{"ts": nil}))
}

func TestSlidingWindowWithOffset(t *testing.T) {
	f := newFixture()
	h := f.build(t, "window", "ts", "10 minutes", "5 minutes", "2 minutes")

	ts := time.Date(2024, 1, 1, 9, 13, 0, 0, time.UTC)
	got, ok := f.eval(t, h, map[string]interface{}{"ts": ts}).([]interface{})
	require.True(t, ok)
	require.Len(t, got, 2)
	first := got[0].(map[string]interface{})
	second := got[1].(map[string]interface{})
	assertTime(t, time.Date(2024, 1, 1, 9, 7, 0, 0, time.UTC), first[types.WindowStartField])
	assertTime(t, time.Date(2024, 1, 1, 9, 17, 0, 0, time.UTC), first[types.WindowEndField])
	assertTime(t, time.Date(2024, 1, 1, 9, 12, 0, 0, time.UTC), second[types.WindowStartField])
	assertTime(t, time.Date(2024, 1, 1, 9, 22, 0, 0, time.UTC), second[types.WindowEndField])
}

func TestWindowRejectsCalendarUnits(t *testing.T) {
	e := New(WithLogger(logger.NewDiscardLogger()))
	ts, err := e.Column("ts")
	require.NoError(t, err)
	length, err := e.Literal(types.StringScalar("1 month"))
	require.NoError(t, err)
	_, err = e.Call(context.Background(), "window", []engine.Ref{ts, length}, types.OptionsMap{})
	var failure *engine.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "AnalysisException", failure.Name)
}

func assertTime(t *testing.T, want time.Time, got interface{}) {
	t.Helper()
	tm, ok := got.(time.Time)
	require.True(t, ok, "expected time.Time, got %T", got)
	assert.True(t, want.Equal(tm), "want %s, got %s", want, tm)
}

func TestDatetimeFunctions(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	f := newFixture(WithClock(func() time.Time { return now }))
	row := map[string]interface{}{"ts": time.Date(2024, 2, 29, 13, 45, 30, 0, time.UTC), "d": "2024-01-31"}

	tests := []struct {
		function string
		args     []interface{}
		want     interface{}
	}{
		{"date_format", []interface{}{"ts", "yyyy-MM-dd HH:mm"}, "2024-02-29 13:45"},
		{"year", []interface{}{"ts"}, int64(2024)},
		{"month", []interface{}{"ts"}, int64(2)},
		{"hour", []interface{}{"ts"}, int64(13)},
		{"current_date", nil, types.Date{Year: 2024, Month: time.March, Day: 15}},
		{"datediff", []interface{}{"ts", "d"}, int64(29)},
		{"last_day", []interface{}{"d"}, types.Date{Year: 2024, Month: time.January, Day: 31}},
	}
	for _, tt := range tests {
		t.Run(tt.function, func(t *testing.T) {
			h := f.build(t, tt.function, tt.args...)
			assert.Equal(t, tt.want, f.eval(t, h, row))
		})
	}
}

func TestCollectionFunctions(t *testing.T) {
	f := newFixture()
	row := map[string]interface{}{"a": 1, "b": "x", "xs": []int{3, 1, 2}, "m": map[string]interface{}{"k": "v"}}

	alias := f.build(t, expr.OpAlias, f.build(t, "upper", "b"), "B")
	h := f.build(t, "struct", "a", alias, f.build(t, "lower", "b"))
	assert.Equal(t, map[string]interface{}{"a": int64(1), "B": "X", "col3": "x"}, f.eval(t, h, row))

	h = f.build(t, "array_contains", "xs", 2)
	assert.Equal(t, true, f.eval(t, h, row))

	h = f.build(t, "sort_array", "xs")
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, f.eval(t, h, row))

	h = f.build(t, "element_at", "xs", -1)
	assert.Equal(t, int64(2), f.eval(t, h, row))

	h = f.build(t, "size", "missing")
	assert.Equal(t, int64(-1), f.eval(t, h, row))

	h = f.build(t, "map_keys", "m")
	assert.Equal(t, []interface{}{"k"}, f.eval(t, h, row))

	h = f.build(t, expr.OpGetItem, col("xs"), 0)
	assert.Equal(t, int64(3), f.eval(t, h, row))
}

type sensor struct {
	Name string            `json:"name"`
	Tags map[string]string `json:"tags"`
}

func TestFieldAccess(t *testing.T) {
	f := newFixture()
	row := map[string]interface{}{
		"dev": &sensor{Name: "s1", Tags: map[string]string{"env": "prod"}},
		"m":   map[string]interface{}{"k": 1},
		"n":   5,
	}
	name := expr.NewLiteral(types.StringScalar("name"))

	h := f.build(t, expr.OpGetField, col("dev"), name)
	assert.Equal(t, "s1", f.eval(t, h, row))

	tags := f.build(t, expr.OpGetField, col("dev"), expr.NewLiteral(types.StringScalar("tags")))
	h = f.build(t, expr.OpGetItem, tags, expr.NewLiteral(types.StringScalar("env")))
	assert.Equal(t, "prod", f.eval(t, h, row))

	h = f.build(t, expr.OpGetField, col("m"), expr.NewLiteral(types.StringScalar("absent")))
	assert.Nil(t, f.eval(t, h, row))

	h = f.build(t, expr.OpGetField, col("n"), name)
	_, err := f.engine.Evaluate(context.Background(), h, row)
	assert.Error(t, err)
}

func TestNestedColumnPath(t *testing.T) {
	f := newFixture()
	row := map[string]interface{}{
		"dev":   &sensor{Name: "s1", Tags: map[string]string{"env": "prod"}},
		"codes": map[int]string{404: "missing"},
		"list":  []interface{}{"x", "y"},
		"a.b":   "dotted",
	}
	tests := []struct {
		column string
		want   interface{}
	}{
		{"dev.name", "S1"},
		{"dev.tags['env']", "PROD"},
		{"codes[404]", "MISSING"},
		{"list[-1]", "Y"},
		{"a.b", "DOTTED"},
		{"dev.model", nil},
		{"codes[500]", nil},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			h := f.build(t, "upper", tt.column)
			assert.Equal(t, tt.want, f.eval(t, h, row))
		})
	}

	f = newFixture(WithSchema("dev"))
	h := f.build(t, "upper", "dev.name")
	assert.Equal(t, "S1", f.eval(t, h, row))
	_, err := f.submit("upper", "other.name")
	assert.Equal(t, "AnalysisException", rejection(t, err).Name)
}

func TestStructuredText(t *testing.T) {
	f := newFixture()
	row := map[string]interface{}{"a": 1, "b": "x", "line": "2|y", "doc": `{"a": 5, "b": "z"}`}
	s := f.build(t, "struct", "a", "b")

	h := f.build(t, "to_json", s)
	assert.Equal(t, `{"a":1,"b":"x"}`, f.eval(t, h, row))

	h = f.build(t, "from_json", "doc", "a INT, b STRING")
	assert.Equal(t, map[string]interface{}{"a": int64(5), "b": "z"}, f.eval(t, h, row))

	h = f.build(t, "to_csv", s, map[string]string{"sep": "|"})
	assert.Equal(t, "1|x", f.eval(t, h, row))

	h = f.build(t, "from_csv", "line", "a INT, b STRING", map[string]string{"sep": "|"})
	assert.Equal(t, map[string]interface{}{"a": int64(2), "b": "y"}, f.eval(t, h, row))

	h = f.build(t, "get_json_object", "doc", "$.b")
	assert.Equal(t, "z", f.eval(t, h, row))

	h = f.build(t, "schema_of_json", `{"b": [1], "a": "s"}`)
	assert.Equal(t, "STRUCT<a: STRING, b: ARRAY<BIGINT>>", f.eval(t, h, row))
}

func TestHashFunctions(t *testing.T) {
	f := newFixture()
	h := f.build(t, "hash", "a", "b")
	first := f.eval(t, h, map[string]interface{}{"a": 1, "b": "x"})
	assert.IsType(t, int64(0), first)
	assert.Equal(t, first, f.eval(t, h, map[string]interface{}{"a": 1, "b": "x"}))
	assert.NotEqual(t, first, f.eval(t, h, map[string]interface{}{"a": 2, "b": "x"}))

	h = f.build(t, "md5", "b")
	assert.Equal(t, "9dd4e461268c8034f5c8564e155c67a6", f.eval(t, h, map[string]interface{}{"b": "x"}))

	h = f.build(t, "sha2", "b", 256)
	assert.Equal(t, "2d711642b726b04401627ca9fbac32f5c8530fb1903cc4db02258717921a4881", f.eval(t, h, map[string]interface{}{"b": "x"}))

	h = f.build(t, "xxhash64", "b")
	assert.IsType(t, int64(0), f.eval(t, h, map[string]interface{}{"b": "x"}))
}

func TestRejections(t *testing.T) {
	f := newFixture()
	for _, tt := range []struct {
		function string
		args     []interface{}
		name     string
	}{
		{"sum", []interface{}{"x"}, "UnsupportedOperation"},
		{"row_number", nil, "UnsupportedOperation"},
		{expr.OpAsc, []interface{}{"x"}, "UnsupportedOperation"},
		{"explode", []interface{}{"x"}, "UnsupportedOperation"},
		{"rand", nil, "UnsupportedOperation"},
	} {
		t.Run(tt.function, func(t *testing.T) {
			_, err := f.submit(tt.function, tt.args...)
			assert.Equal(t, tt.name, rejection(t, err).Name)
		})
	}

	_, err := f.engine.Call(context.Background(), "no_such_function", nil, types.OptionsMap{})
	var failure *engine.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "UndefinedFunction", failure.Name)

	_, err = f.engine.Call(context.Background(), "upper", nil, types.OptionsMap{})
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "AnalysisException", failure.Name)
}

func TestSchema(t *testing.T) {
	f := newFixture(WithSchema("a", "b"))
	_, err := f.submit("upper", "c")
	rej := rejection(t, err)
	assert.Equal(t, "AnalysisException", rej.Name)
	assert.Equal(t, "cannot resolve '`c`' given input columns: [a, b]", rej.Message)

	h := f.build(t, "upper", "a")
	assert.Equal(t, "A", f.eval(t, h, map[string]interface{}{"a": "a"}))
}

func TestComposeHandles(t *testing.T) {
	f := newFixture()
	upper := f.build(t, "upper", "s")
	h := f.build(t, "length", upper)
	assert.Equal(t, int64(5), f.eval(t, h, map[string]interface{}{"s": "hello"}))
	assert.Equal(t, "length(upper(s))", h.Ref().(*Expression).Name())
}

func TestMonotonicallyIncreasingID(t *testing.T) {
	f := newFixture()
	h := f.build(t, "monotonically_increasing_id")
	assert.Equal(t, int64(0), f.eval(t, h, nil))
	assert.Equal(t, int64(1), f.eval(t, h, nil))
}

func TestSelect(t *testing.T) {
	f := newFixture()
	sum := f.build(t, expr.OpAlias, f.build(t, expr.OpAdd, col("a"), col("b")), "total")
	rows := []map[string]interface{}{{"a": 1, "b": 2}, {"a": 3, "b": nil}}
	out, err := f.engine.Select(context.Background(), rows, f.build(t, "upper", "c"), sum)
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{
		{"upper(c)": nil, "total": int64(3)},
		{"upper(c)": nil, "total": nil},
	}, out)
}

func TestEvaluateForeignReference(t *testing.T) {
	e := New()
	_, err := e.Evaluate(context.Background(), "not an expression", nil)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ref, err := e.Column("a")
	require.NoError(t, err)
	_, err = e.Evaluate(ctx, ref, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTimeZone(t *testing.T) {
	f := newFixture(WithConfig(types.Config{TimeZone: time.FixedZone("CST", 8*3600)}))
	h := f.build(t, "hour", "ts")
	assert.Equal(t, int64(8), f.eval(t, h, map[string]interface{}{"ts": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}))
}
