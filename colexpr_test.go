package colexpr

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/colexpr/engine/local"
	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/types"
)

func TestNamedConstructors(t *testing.T) {
	call, err := SubstringIndex("a.b.c.d", ".", 2)
	require.NoError(t, err)
	assert.Equal(t, "substring_index('a.b.c.d', '.', 2)", call.String())

	data := Col("data")
	call, err = ArrayRepeat(data, 3)
	require.NoError(t, err)
	assert.Same(t, data, call.Arg(0))
	assert.Equal(t, "array_repeat(data, 3)", call.String())

	// 二元数学函数的数值统一为浮点
	call, err = Atan2(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "atan2(2.0, 3.0)", call.String())

	call, err = Round("price", 2)
	require.NoError(t, err)
	assert.Equal(t, "round(price, 2)", call.String())

	call, err = Struct([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, call.NumArgs())
}

func TestConstructorErrors(t *testing.T) {
	_, err := Greatest("a")
	var insufficient *types.InsufficientArgumentsError
	assert.True(t, errors.As(err, &insufficient))

	_, err = Window("ts", "1 month")
	var unit *types.UnsupportedWindowUnitError
	assert.True(t, errors.As(err, &unit))

	_, err = Call("upper", "a", "b")
	var arity *types.ArityError
	assert.True(t, errors.As(err, &arity))

	_, err = Call("no_such_function")
	var unknown *types.UnknownFunctionError
	assert.True(t, errors.As(err, &unknown))
}

func TestOperatorsTakeLiterals(t *testing.T) {
	call, err := Add(Col("price"), 1)
	require.NoError(t, err)
	assert.Equal(t, "(price + 1)", call.String())

	call, err = Eq(Col("name"), "bob")
	require.NoError(t, err)
	assert.Equal(t, "(name = 'bob')", call.String())
}

func TestDeprecatedName(t *testing.T) {
	rec := logger.NewRecorder(logger.DEBUG)
	b := New(WithLogger(rec))
	call, err := b.Call("toDegrees", "angle")
	require.NoError(t, err)
	assert.Equal(t, "degrees", call.Function())
	assert.Equal(t, 1, rec.Count(logger.WARN))

	rec.Reset()
	b = New(WithLogger(rec), WithDeprecationNotices(false))
	_, err = b.Call("toDegrees", "angle")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count(logger.WARN))
}

func TestSubmitWithoutEngine(t *testing.T) {
	call, err := Upper("a")
	require.NoError(t, err)
	_, err = New().Submit(context.Background(), call)
	assert.ErrorIs(t, err, ErrNoEngine)
}

func TestBuilderWithLocalEngine(t *testing.T) {
	eng := local.New(local.WithSchema("ts", "name"), local.WithLogger(logger.NewDiscardLogger()))
	b := New(WithEngine(eng), WithDiscardLog())
	ctx := context.Background()

	h, err := b.Apply(ctx, "window", "ts", "5 seconds")
	require.NoError(t, err)
	got, err := eng.Evaluate(ctx, h, map[string]interface{}{"ts": time.Date(2024, 1, 1, 9, 0, 7, 0, time.UTC)})
	require.NoError(t, err)
	slot := got.(map[string]interface{})
	assert.True(t, time.Date(2024, 1, 1, 9, 0, 5, 0, time.UTC).Equal(slot["start"].(time.Time)))

	// 句柄作为参数继续组合
	upper, err := b.Apply(ctx, "upper", "name")
	require.NoError(t, err)
	h, err = b.Apply(ctx, "concat_ws", "-", upper, "name")
	require.NoError(t, err)
	got, err = eng.Evaluate(ctx, h, map[string]interface{}{"name": "ann"})
	require.NoError(t, err)
	assert.Equal(t, "ANN-ann", got)

	// 引擎的错误消息原样返回
	_, err = b.Apply(ctx, "upper", "missing")
	var rejected *types.EngineRejectedExpression
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "AnalysisException", rejected.Name)
	assert.Equal(t, "cannot resolve '`missing`' given input columns: [ts, name]", rejected.Message)
}

func TestOptionsReachEngine(t *testing.T) {
	eng := local.New(local.WithLogger(logger.NewDiscardLogger()))
	b := New(WithEngine(eng), WithDiscardLog())
	ctx := context.Background()

	s, err := b.Call("struct", "a", "b")
	require.NoError(t, err)
	call, err := b.Call("to_csv", s, map[string]string{"sep": "|"})
	require.NoError(t, err)
	v, ok := call.Named("sep")
	require.True(t, ok)
	assert.Equal(t, "'|'", v.String())

	h, err := b.Submit(ctx, call)
	require.NoError(t, err)
	got, err := eng.Evaluate(ctx, h, map[string]interface{}{"a": 1, "b": "x"})
	require.NoError(t, err)
	assert.Equal(t, "1|x", got)
}

func TestMaxDepth(t *testing.T) {
	eng := local.New(local.WithLogger(logger.NewDiscardLogger()))
	b := New(WithEngine(eng), WithDiscardLog(), WithMaxDepth(3))
	var node expr.Node = Col("x")
	for i := 0; i < 4; i++ {
		call, err := Negate(node)
		require.NoError(t, err)
		node = call
	}
	_, err := b.Submit(context.Background(), node)
	var invalid *types.InvalidArgumentError
	assert.True(t, errors.As(err, &invalid))
}

func TestLogOutput(t *testing.T) {
	var buf bytes.Buffer
	b := New(WithLogOutput(&buf, logger.WARN))
	_, err := b.Call("toRadians", "angle")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "toRadians is deprecated, use radians instead")
}

func TestFunctionsCatalog(t *testing.T) {
	names := map[string]bool{}
	for _, d := range Functions() {
		names[d.Name] = true
	}
	for _, name := range []string{"abs", "window", "from_json", "row_number", expr.OpAdd} {
		assert.True(t, names[name], name)
	}
}

func TestParseText(t *testing.T) {
	node, err := Parse("upper(name) = 'ANN' AND age >= 18")
	require.NoError(t, err)
	assert.Equal(t, "((upper(name) = 'ANN') AND (age >= 18))", node.String())

	_, err = Parse("nope(x)")
	var unknown *types.UnknownFunctionError
	assert.True(t, errors.As(err, &unknown))

	_, err = Parse("upper(a, b)")
	var arity *types.ArityError
	assert.True(t, errors.As(err, &arity))

	eng := local.New(local.WithLogger(logger.NewDiscardLogger()))
	b := New(WithEngine(eng), WithDiscardLog())
	ctx := context.Background()
	node, err = b.Parse("CASE WHEN age >= 18 THEN 'adult' ELSE 'minor' END")
	require.NoError(t, err)
	h, err := b.Submit(ctx, node)
	require.NoError(t, err)
	for age, want := range map[int]string{20: "adult", 9: "minor"} {
		got, err := eng.Evaluate(ctx, h, map[string]interface{}{"age": age})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
