package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/types"
)

// fakeEngine renders refs as strings and records every call
type fakeEngine struct {
	calls    []string
	options  []types.OptionsMap
	rejectFn string
	known    map[string]bool
}

func (f *fakeEngine) Literal(value types.Scalar) (Ref, error) {
	return "lit:" + value.SQL(), nil
}

func (f *fakeEngine) Column(name string) (Ref, error) {
	if f.known != nil && !f.known[name] {
		return nil, Reject("AnalysisException", "cannot resolve '`%s`' given input columns", name)
	}
	return "col:" + name, nil
}

func (f *fakeEngine) Call(ctx context.Context, function string, args []Ref, opts types.OptionsMap) (Ref, error) {
	if function == f.rejectFn {
		return nil, Reject("AnalysisException", "cannot resolve '%s' due to data type mismatch", function)
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	f.calls = append(f.calls, function)
	f.options = append(f.options, opts)
	return function + "[" + strings.Join(parts, ",") + "]", nil
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("h%d", n)
	}
}

func TestSubmit(t *testing.T) {
	eng := &fakeEngine{}
	rec := logger.NewRecorder(logger.DEBUG)
	b := New(eng, WithLogger(rec), WithIDFunc(sequentialIDs()))

	call := expr.NewCall("upper", []expr.Node{
		expr.NewCall("concat", []expr.Node{expr.NewColumnRef("a"), expr.NewLiteral(types.StringScalar("x"))}),
	})
	h, err := b.Submit(context.Background(), call)
	require.NoError(t, err)
	assert.Equal(t, "h1", h.ID())
	assert.Equal(t, "upper[concat[col:a,lit:'x']]", h.Ref())
	assert.Same(t, call, h.Origin())
	assert.Equal(t, []string{"concat", "upper"}, eng.calls)
	assert.Equal(t, call.String(), h.String())
	assert.Equal(t, 1, rec.Count(logger.DEBUG))

	// 句柄可以继续组合，不会重复提交
	outer := expr.NewCall("length", []expr.Node{h})
	h2, err := b.Submit(context.Background(), outer)
	require.NoError(t, err)
	assert.Equal(t, "h2", h2.ID())
	assert.Equal(t, "length[upper[concat[col:a,lit:'x']]]", h2.Ref())
	assert.Equal(t, []string{"concat", "upper", "length"}, eng.calls)

	same, err := b.Submit(context.Background(), h2)
	require.NoError(t, err)
	assert.Same(t, h2, same)
}

func TestSubmitOptions(t *testing.T) {
	eng := &fakeEngine{}
	b := New(eng, WithLogger(logger.NewDiscardLogger()))

	call := expr.NewCall("to_csv", []expr.Node{expr.NewColumnRef("s")},
		expr.NamedArg{Name: "sep", Value: expr.NewLiteral(types.StringScalar("|"))},
		expr.NamedArg{Name: "header", Value: expr.NewLiteral(types.BoolScalar(true))},
	)
	_, err := b.Submit(context.Background(), call)
	require.NoError(t, err)
	require.Len(t, eng.options, 1)
	assert.Equal(t, []string{"sep", "header"}, eng.options[0].Keys())
	sep, _ := eng.options[0].Get("sep")
	assert.Equal(t, "|", sep)
	header, _ := eng.options[0].Get("header")
	assert.Equal(t, "true", header)

	bad := expr.NewCall("to_csv", []expr.Node{expr.NewColumnRef("s")},
		expr.NamedArg{Name: "sep", Value: expr.NewColumnRef("other")})
	_, err = b.Submit(context.Background(), bad)
	var argErr *types.InvalidArgumentError
	assert.True(t, errors.As(err, &argErr))
}

func TestSubmitRejected(t *testing.T) {
	eng := &fakeEngine{rejectFn: "sqrt"}
	b := New(eng, WithLogger(logger.NewDiscardLogger()))

	_, err := b.Submit(context.Background(), expr.NewCall("sqrt", []expr.Node{expr.NewColumnRef("name")}))
	var rej *types.EngineRejectedExpression
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "AnalysisException", rej.Name)
	assert.Equal(t, "cannot resolve 'sqrt' due to data type mismatch", rej.Message)

	eng = &fakeEngine{known: map[string]bool{"a": true}}
	b = New(eng, WithLogger(logger.NewDiscardLogger()))
	_, err = b.Submit(context.Background(), expr.NewCall("abs", []expr.Node{expr.NewColumnRef("missing")}))
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "cannot resolve '`missing`' given input columns", rej.Message)
	assert.Empty(t, eng.calls)
}

func TestSubmitLimits(t *testing.T) {
	b := New(&fakeEngine{}, WithLogger(logger.NewDiscardLogger()), WithMaxDepth(3))

	var node expr.Node = expr.NewColumnRef("x")
	for i := 0; i < 3; i++ {
		node = expr.NewCall("abs", []expr.Node{node})
	}
	_, err := b.Submit(context.Background(), node)
	var argErr *types.InvalidArgumentError
	assert.True(t, errors.As(err, &argErr))

	_, err = b.Submit(context.Background(), nil)
	assert.True(t, errors.As(err, &argErr))

	for _, bad := range []expr.Node{
		(*expr.Call)(nil),
		(*expr.Literal)(nil),
		expr.NewCall("abs", []expr.Node{(*expr.ColumnRef)(nil)}),
	} {
		argErr = nil
		_, err = b.Submit(context.Background(), bad)
		require.True(t, errors.As(err, &argErr), "%T", bad)
		assert.Equal(t, "nil expression", argErr.Message)
	}

	_, err = b.Submit(context.Background(), expr.NewCall("abs", []expr.Node{expr.NewHandle("h", nil, nil)}))
	assert.True(t, errors.As(err, &argErr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Submit(ctx, expr.NewColumnRef("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUUIDHandles(t *testing.T) {
	b := New(&fakeEngine{}, WithLogger(logger.NewDiscardLogger()))
	h1, err := b.Submit(context.Background(), expr.NewColumnRef("x"))
	require.NoError(t, err)
	h2, err := b.Submit(context.Background(), expr.NewColumnRef("x"))
	require.NoError(t, err)
	assert.Len(t, h1.ID(), 36)
	assert.NotEqual(t, h1.ID(), h2.ID())
}

func TestFailure(t *testing.T) {
	f := Reject("ParseException", "mismatched input '%s'", ")")
	assert.Equal(t, "ParseException: mismatched input ')'", f.Error())
	assert.Equal(t, "plain", (&Failure{Message: "plain"}).Error())
}
