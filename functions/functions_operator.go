package functions

import "github.com/rulego/colexpr/expr"

// 运算符与排序表达式
func operatorFunctions() []*Descriptor {
	var out []*Descriptor
	for _, op := range []struct {
		name, description string
	}{
		{expr.OpAdd, "Addition"},
		{expr.OpSub, "Subtraction"},
		{expr.OpMul, "Multiplication"},
		{expr.OpDiv, "Division"},
		{expr.OpMod, "Remainder"},
		{expr.OpEq, "Equality"},
		{expr.OpNe, "Inequality"},
		{expr.OpLt, "Less than"},
		{expr.OpLe, "Less than or equal"},
		{expr.OpGt, "Greater than"},
		{expr.OpGe, "Greater than or equal"},
		{expr.OpAnd, "Logical and"},
		{expr.OpOr, "Logical or"},
		{expr.OpAlias, "Give the expression a name"},
		{expr.OpGetField, "Field of a struct by name"},
		{expr.OpGetItem, "Item of an array by index or of a map by key"},
	} {
		out = append(out, scalar(TypeOperator, op.name, 2, 2, op.description, pLit))
	}
	for _, op := range []struct {
		name, description string
	}{
		{expr.OpNot, "Logical negation"},
		{expr.OpNegate, "Arithmetic negation"},
		{expr.OpIsNull, "True if the value is null"},
		{expr.OpIsNotNull, "True if the value is not null"},
	} {
		out = append(out, scalar(TypeOperator, op.name, 1, 1, op.description, pLit))
	}

	out = append(out,
		scalar(TypeConversion, expr.OpCast, 2, 2, "Convert to the named data type", pLit),
		scalar(TypeSort, expr.OpAsc, 1, 1, "Ascending sort expression", pCol),
		scalar(TypeSort, expr.OpDesc, 1, 1, "Descending sort expression", pCol),
		unary(TypeSort, "asc_nulls_first", "Ascending sort, nulls before non-null values"),
		unary(TypeSort, "asc_nulls_last", "Ascending sort, nulls after non-null values"),
		unary(TypeSort, "desc_nulls_first", "Descending sort, nulls before non-null values"),
		unary(TypeSort, "desc_nulls_last", "Descending sort, nulls after non-null values"),
	)
	return out
}
