package functions

// 条件与空值处理函数
func conditionalFunctions() []*Descriptor {
	greatest := scalar(TypeConditional, "greatest", 2, Unbounded, "Greatest value of the list of columns, skipping nulls", pCol)
	greatest.AtLeast = 2
	least := scalar(TypeConditional, "least", 2, Unbounded, "Least value of the list of columns, skipping nulls", pCol)
	least.AtLeast = 2

	return []*Descriptor{
		scalar(TypeConditional, "coalesce", 1, Unbounded, "First column that is not null", pCol),
		greatest,
		least,
		scalar(TypeConditional, "when", 2, 2, "Value when condition holds, null otherwise", pExpr, pLit),
		scalar(TypeConditional, "otherwise", 2, 2, "Value for unmatched conditions of a when expression", pExpr, pLit),
		scalar(TypeConditional, "nanvl", 2, 2, "col1 if it is not NaN, or col2", pCol, pCol),
		unary(TypeConditional, "isnan", "Whether the value is NaN"),
		unary(TypeConditional, "isnull", "Whether the value is null"),
	}
}
