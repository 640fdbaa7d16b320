package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/colexpr/types"
)

// TestTokenize 测试分词功能
func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		types  []TokenType
		values []string
	}{
		{"简单表达式", "a + b", []TokenType{TokenIdent, TokenOperator, TokenIdent}, []string{"a", "+", "b"}},
		{"小数", "3.14 * 2", []TokenType{TokenNumber, TokenOperator, TokenNumber}, []string{"3.14", "*", "2"}},
		{"负数由解析器处理", "-5", []TokenType{TokenOperator, TokenNumber}, []string{"-", "5"}},
		{"科学计数法", "1e-3", []TokenType{TokenNumber}, []string{"1e-3"}},
		{"双字符运算符", "a>=b", []TokenType{TokenIdent, TokenOperator, TokenIdent}, []string{"a", ">=", "b"}},
		{"SQL不等于", "a <> b", []TokenType{TokenIdent, TokenOperator, TokenIdent}, []string{"a", "<>", "b"}},
		{"函数调用", "max(a, b)", []TokenType{TokenIdent, TokenLeftParen, TokenIdent, TokenComma, TokenIdent, TokenRightParen}, []string{"max", "(", "a", ",", "b", ")"}},
		{"单引号字符串", "'hello'", []TokenType{TokenString}, []string{"hello"}},
		{"双写引号", "'it''s'", []TokenType{TokenString}, []string{"it's"}},
		{"转义字符", `"a\tb"`, []TokenType{TokenString}, []string{"a\tb"}},
		{"反引号字段", "`field name`", []TokenType{TokenIdent}, []string{"field name"}},
		{"关键字大写", "a and not b", []TokenType{TokenIdent, TokenKeyword, TokenKeyword, TokenIdent}, []string{"a", "AND", "NOT", "b"}},
		{"字段访问", "s.f[0]", []TokenType{TokenIdent, TokenOperator, TokenIdent, TokenOperator, TokenNumber, TokenOperator}, []string{"s", ".", "f", "[", "0", "]"}},
		{"中文标识符", "温度 > 30", []TokenType{TokenIdent, TokenOperator, TokenNumber}, []string{"温度", ">", "30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.text)
			require.NoError(t, err)
			require.Len(t, tokens, len(tt.types)+1)
			for i := range tt.types {
				assert.Equal(t, tt.types[i], tokens[i].Type, "token %d", i)
				assert.Equal(t, tt.values[i], tokens[i].Value, "token %d", i)
			}
			assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, text := range []string{"", "   ", "'abc", "`abc", "a # b", "a ! b"} {
		_, err := Tokenize(text)
		assert.Error(t, err, text)
	}
}

// TestParse 解析结果按SQL形式渲染后比较
func TestParse(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"a", "a"},
		{"a + b * 2", "(a + (b * 2))"},
		{"(a + b) * 2", "((a + b) * 2)"},
		{"a - b - c", "((a - b) - c)"},
		{"-1 + x", "(-1 + x)"},
		{"-x", "(- x)"},
		{"+x", "x"},
		{"a % 3 = 0", "((a % 3) = 0)"},
		{"NOT a AND b", "((NOT a) AND b)"},
		{"a = 'x' OR b <> 2", "((a = 'x') OR (b != 2))"},
		{"a == 1 and b >= 2 or c", "(((a = 1) AND (b >= 2)) OR c)"},
		{"x IS NULL", "(x IS NULL)"},
		{"x is not null", "(x IS NOT NULL)"},
		{"upper(name)", "upper(name)"},
		{"current_date()", "current_date()"},
		{"coalesce(a, NULL, 1.5)", "coalesce(a, NULL, 1.5)"},
		{"concat(first, ' ', last)", "concat(first, ' ', last)"},
		{"s.f[0]", "s.f[0]"},
		{"m['k']", "m['k']"},
		{"CAST(x AS int)", "CAST(x AS INT)"},
		{"cast(price AS decimal(10, 2))", "CAST(price AS DECIMAL(10,2))"},
		{"a + 1 AS total", "(a + 1) AS total"},
		{"`my col` * 2", "(`my col` * 2)"},
		{"'it''s'", "'it''s'"},
		{"true AND false", "(TRUE AND FALSE)"},
		{"1e3", "1000.0"},
		{"CASE WHEN a > 1 THEN 'big' ELSE 'small' END", "otherwise(when((a > 1), 'big'), 'small')"},
		{"CASE WHEN a > 1 THEN 'big' END", "when((a > 1), 'big')"},
		{"CASE k WHEN 1 THEN 'one' WHEN 2 THEN 'two' END", "otherwise(when((k = 1), 'one'), when((k = 2), 'two'))"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			node, err := Parse(tt.text, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, node.String())
		})
	}
}

func TestParseLiterals(t *testing.T) {
	node, err := Parse("9223372036854775807", nil)
	require.NoError(t, err)
	assert.Equal(t, types.IntScalar(9223372036854775807), node.(*Literal).Scalar())

	node, err = Parse("9223372036854775808", nil)
	require.NoError(t, err)
	assert.Equal(t, types.KindFloat, node.(*Literal).Scalar().Kind())

	node, err = Parse("-2.5", nil)
	require.NoError(t, err)
	assert.Equal(t, types.FloatScalar(-2.5), node.(*Literal).Scalar())

	node, err = Parse("NULL", nil)
	require.NoError(t, err)
	assert.True(t, node.(*Literal).Scalar().IsNull())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		text string
		pos  int
	}{
		{"a +", 3},
		{"(a", 2},
		{"f(a b", 4},
		{"a b", 2},
		{"CASE END", 5},
		{"CAST(x)", 6},
		{"x IS 1", 5},
		{"a AS", 4},
		{"s. 1", 3},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Parse(tt.text, nil)
			require.Error(t, err)
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "%v", err)
			assert.Equal(t, tt.pos, syntaxErr.Pos)
		})
	}
}

func TestParseWithBuilder(t *testing.T) {
	var calls []string
	build := func(function string, args ...Node) (Node, error) {
		calls = append(calls, function)
		return NewCall(function, args), nil
	}
	_, err := Parse("abs(a - 1) > 2", build)
	require.NoError(t, err)
	assert.Equal(t, []string{OpSub, "abs", OpGt}, calls)

	failed := errors.New("unknown function")
	_, err = Parse("nope(a)", func(function string, args ...Node) (Node, error) {
		return nil, failed
	})
	assert.ErrorIs(t, err, failed)
}
