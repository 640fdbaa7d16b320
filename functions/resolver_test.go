package functions

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/options"
	"github.com/rulego/colexpr/types"
)

func newTestResolver(opts ...ResolverOption) (*Resolver, *logger.Recorder) {
	rec := logger.NewRecorder(logger.DEBUG)
	return NewResolver(nil, append([]ResolverOption{WithLogger(rec)}, opts...)...), rec
}

func literalKinds(t *testing.T, call *expr.Call) []types.Kind {
	var kinds []types.Kind
	for _, arg := range call.Args() {
		lit, ok := arg.(*expr.Literal)
		require.True(t, ok, "argument %s is not a literal", arg)
		kinds = append(kinds, lit.Scalar().Kind())
	}
	return kinds
}

func TestResolveSubstringIndex(t *testing.T) {
	r, _ := newTestResolver()
	call, err := r.Resolve("substring_index", "a.b.c.d", ".", 2)
	require.NoError(t, err)
	assert.Equal(t, "substring_index", call.Function())
	assert.Equal(t, []types.Kind{types.KindString, types.KindString, types.KindInteger}, literalKinds(t, call))
	assert.Equal(t, "substring_index('a.b.c.d', '.', 2)", call.String())
}

func TestResolveArrayRepeat(t *testing.T) {
	r, _ := newTestResolver()
	data := expr.NewColumnRef("data")
	call, err := r.Resolve("array_repeat", data, 3)
	require.NoError(t, err)
	assert.Same(t, data, call.Arg(0))
	lit, ok := call.Arg(1).(*expr.Literal)
	require.True(t, ok)
	assert.Equal(t, types.KindInteger, lit.Scalar().Kind())
	assert.Equal(t, int64(3), lit.Scalar().Value())

	// 字符串按列名处理
	call, err = r.Resolve("array_repeat", "data", 3)
	require.NoError(t, err)
	assert.True(t, expr.Equal(data, call.Arg(0)))
}

func TestResolveGreatestLeast(t *testing.T) {
	r, _ := newTestResolver()
	for _, name := range []string{"greatest", "least"} {
		for _, args := range [][]interface{}{nil, {"a"}} {
			_, err := r.Resolve(name, args...)
			var insufficient *types.InsufficientArgumentsError
			require.True(t, errors.As(err, &insufficient), "%s%v", name, args)
			assert.Equal(t, 2, insufficient.AtLeast)
			assert.Equal(t, len(args), insufficient.Got)
			assert.Contains(t, err.Error(), name+" should take at least 2 columns")
		}
		call, err := r.Resolve(name, "a", "b", expr.NewColumnRef("c"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, expr.Columns(call))
	}
}

func TestResolveDeprecated(t *testing.T) {
	tests := []struct {
		name        string
		replacement string
	}{
		{"toDegrees", "degrees"},
		{"toRadians", "radians"},
		{"approxCountDistinct", "approx_count_distinct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rec := newTestResolver()
			call, err := r.Resolve(tt.name, "x")
			require.NoError(t, err)
			assert.Equal(t, tt.replacement, call.Function())
			assert.Equal(t, 1, rec.Count(logger.WARN))
			assert.Contains(t, rec.Entries()[0].Message, tt.replacement)

			_, err = r.Resolve(tt.name, "y")
			require.NoError(t, err)
			assert.Equal(t, 2, rec.Count(logger.WARN))
		})
	}

	cfg := types.NewConfig()
	cfg.DeprecationNotices = false
	r, rec := newTestResolver(WithConfig(cfg))
	_, err := r.Resolve("toDegrees", "x")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count(logger.WARN))
}

func TestResolveBinaryMath(t *testing.T) {
	r, _ := newTestResolver()

	call, err := r.Resolve("atan2", "y", 2)
	require.NoError(t, err)
	assert.Equal(t, expr.NewColumnRef("y").String(), call.Arg(0).String())
	lit := call.Arg(1).(*expr.Literal)
	assert.Equal(t, types.KindFloat, lit.Scalar().Kind())
	assert.Equal(t, 2.0, lit.Scalar().Value())
	assert.Equal(t, "atan2(y, 2.0)", call.String())

	call, err = r.Resolve("pow", 2, uint8(3))
	require.NoError(t, err)
	assert.Equal(t, []types.Kind{types.KindFloat, types.KindFloat}, literalKinds(t, call))

	// 非二元数学函数保留原始类型
	call, err = r.Resolve("round", "x", 2)
	require.NoError(t, err)
	assert.Equal(t, types.KindInteger, call.Arg(1).(*expr.Literal).Scalar().Kind())

	_, err = r.Resolve("hypot", "a", []byte("b"))
	var litErr *types.UnsupportedLiteralError
	require.True(t, errors.As(err, &litErr))
	assert.Equal(t, "hypot", litErr.Function)
	assert.Equal(t, 1, litErr.Position)
}

func TestResolveLog(t *testing.T) {
	r, _ := newTestResolver()
	call, err := r.Resolve("log", "x")
	require.NoError(t, err)
	assert.Equal(t, "log(x)", call.String())

	call, err = r.Resolve("log", 2.0, "x")
	require.NoError(t, err)
	assert.Equal(t, "log(2.0, x)", call.String())

	_, err = r.Resolve("log")
	var arity *types.ArityError
	assert.True(t, errors.As(err, &arity))
}

func TestResolveFlatten(t *testing.T) {
	r, _ := newTestResolver()
	for _, name := range []string{"struct", "array", "create_map", "map_concat"} {
		call, err := r.Resolve(name, []string{"a", "b"})
		require.NoError(t, err, name)
		assert.Equal(t, 2, call.NumArgs())
		assert.Equal(t, []string{"a", "b"}, expr.Columns(call))

		call, err = r.Resolve(name, []interface{}{expr.NewColumnRef("a"), 1})
		require.NoError(t, err, name)
		assert.Equal(t, 2, call.NumArgs())
	}

	// 其他函数不展开
	_, err := r.Resolve("concat", []string{"a", "b"})
	var litErr *types.UnsupportedLiteralError
	assert.True(t, errors.As(err, &litErr))

	cfg := types.NewConfig()
	cfg.FlattenSingleCollection = false
	r, _ = newTestResolver(WithConfig(cfg))
	_, err = r.Resolve("array", []string{"a", "b"})
	assert.True(t, errors.As(err, &litErr))
}

func TestResolveOptions(t *testing.T) {
	r, _ := newTestResolver()
	call, err := r.Resolve("from_json", "value", "a INT", map[string]interface{}{"mode": "FAILFAST", "allowComments": true})
	require.NoError(t, err)
	require.Equal(t, 2, call.NumArgs())
	named := call.NamedArgs()
	require.Len(t, named, 2)
	assert.Equal(t, "allowComments", named[0].Name)
	assert.Equal(t, "mode", named[1].Name)
	assert.Equal(t, "from_json(value, 'a INT', allowComments => 'true', mode => 'FAILFAST')", call.String())

	call, err = r.Resolve("to_csv", "s", []options.Pair{options.P("sep", "|")})
	require.NoError(t, err)
	opts, err := options.FromNamedArgs(call)
	require.NoError(t, err)
	sep, _ := opts.Get("sep")
	assert.Equal(t, "|", sep)

	call, err = r.Resolve("to_json", "s")
	require.NoError(t, err)
	assert.Empty(t, call.NamedArgs())

	call, err = r.Resolve("to_json", "s", nil)
	require.NoError(t, err)
	assert.Empty(t, call.NamedArgs())

	call, err = r.Resolve("schema_of_json", `{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, types.KindString, call.Arg(0).(*expr.Literal).Scalar().Kind())
}

func TestResolveWhen(t *testing.T) {
	r, _ := newTestResolver()
	cond, err := r.Resolve(expr.OpGt, expr.NewColumnRef("age"), 3)
	require.NoError(t, err)

	call, err := r.Resolve("when", cond, "adult")
	require.NoError(t, err)
	assert.Equal(t, "when((age > 3), 'adult')", call.String())

	_, err = r.Resolve("when", "age > 3", 1)
	var argErr *types.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "when", argErr.Function)
	assert.Equal(t, 0, argErr.Position)
}

func TestResolveWindow(t *testing.T) {
	r, _ := newTestResolver()
	call, err := r.Resolve("window", "ts", "5 seconds")
	require.NoError(t, err)
	spec, err := SpecOf(call.Args())
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, spec.Length)
	assert.True(t, spec.IsTumbling())

	call, err = r.Resolve("window", "ts", "10 minutes", nil, "2 minutes")
	require.NoError(t, err)
	spec, err = SpecOf(call.Args())
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, spec.Slide)
	assert.Equal(t, 2*time.Minute, spec.StartOffset)

	_, err = r.Resolve("window", "ts", "1 month")
	var unitErr *types.UnsupportedWindowUnitError
	assert.True(t, errors.As(err, &unitErr))

	_, err = r.Resolve("window", "ts", expr.NewColumnRef("d"))
	var argErr *types.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, 1, argErr.Position)

	_, err = r.Resolve("window", "ts", "5 seconds", "10 seconds")
	assert.True(t, errors.As(err, &argErr))
}

func TestResolveErrors(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.Resolve("Substring_Index", "a", ".", 1)
	var unknown *types.UnknownFunctionError
	require.True(t, errors.As(err, &unknown))
	assert.Contains(t, unknown.Suggestions, "substring_index")

	_, err = r.Resolve("sqrt")
	var arity *types.ArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, 1, arity.Min)
	assert.Equal(t, 1, arity.Max)
	assert.Equal(t, 0, arity.Got)

	_, err = r.Resolve("lpad", "s", 5, "#", "extra")
	assert.True(t, errors.As(err, &arity))

	_, err = r.Resolve("abs", struct{}{})
	var litErr *types.UnsupportedLiteralError
	require.True(t, errors.As(err, &litErr))
	assert.Equal(t, "struct {}", litErr.GoType)
}

func TestResolveRankFunctions(t *testing.T) {
	r, _ := newTestResolver()
	for _, name := range []string{"row_number", "dense_rank", "rank", "cume_dist", "percent_rank"} {
		call, err := r.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, name+"()", call.String())
		d, _ := Lookup(name)
		assert.Equal(t, CategoryWindow, d.Category)
	}
	call, err := r.Resolve("lag", "v", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "lag(v, 2, 0)", call.String())
}

func TestResolveLogsDebug(t *testing.T) {
	r, rec := newTestResolver()
	_, err := r.Resolve("upper", "name")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Count(logger.DEBUG))
}

func TestApplyPolicy(t *testing.T) {
	col := expr.NewColumnRef("x")
	for _, p := range []Policy{ColumnsMayBeStrings, NumericOrColumn, LiteralOnly, ExpressionOnly} {
		n, err := ApplyPolicy(p, col)
		require.NoError(t, err)
		assert.Same(t, col, n)
	}

	n, err := ApplyPolicy(LiteralOnly, "x")
	require.NoError(t, err)
	assert.Equal(t, "'x'", n.String())

	n, err = ApplyPolicy(ColumnsMayBeStrings, "x")
	require.NoError(t, err)
	assert.Equal(t, expr.KindColumn, n.Kind())

	n, err = ApplyPolicy(NumericOrColumn, true)
	require.NoError(t, err)
	assert.Equal(t, "1.0", n.String())

	assert.Equal(t, ArgExpression, Classify(col))
	assert.Equal(t, ArgName, Classify("x"))
	assert.Equal(t, ArgRawScalar, Classify(1))
	assert.Equal(t, ArgRawScalar, Classify(nil))
}

func TestResolveNilNodes(t *testing.T) {
	r, _ := newTestResolver()
	tests := []struct {
		name string
		fn   string
		args []interface{}
		want string
	}{
		{"nil literal", "abs", []interface{}{(*expr.Literal)(nil)}, "abs(NULL)"},
		{"nil column", "upper", []interface{}{(*expr.ColumnRef)(nil)}, "upper(NULL)"},
		{"nil call", "coalesce", []interface{}{"a", (*expr.Call)(nil)}, "coalesce(a, NULL)"},
		{"nil in literal position", "substring_index", []interface{}{"s", (*expr.Literal)(nil), 1}, "substring_index('s', NULL, 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := r.Resolve(tt.fn, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, call.String())
			for _, arg := range call.Args() {
				assert.False(t, expr.IsNil(arg))
			}
		})
	}

	n, err := ApplyPolicy(ExpressionOnly, (*expr.Call)(nil))
	require.NoError(t, err)
	assert.Equal(t, types.KindNull, n.(*expr.Literal).Scalar().Kind())
}
