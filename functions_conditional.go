package colexpr

import "github.com/rulego/colexpr/expr"

// Coalesce returns the first non-null column.
func Coalesce(cols ...interface{}) (*expr.Call, error) {
	return std.Call("coalesce", cols...)
}

// Greatest is the greatest value of the columns, skipping nulls. It needs at
// least two columns.
func Greatest(cols ...interface{}) (*expr.Call, error) {
	return std.Call("greatest", cols...)
}

// Least is the least value of the columns, skipping nulls. It needs at
// least two columns.
func Least(cols ...interface{}) (*expr.Call, error) {
	return std.Call("least", cols...)
}

// When starts a CASE expression; Otherwise adds the default value.
func When(condition, value interface{}) (*expr.Call, error) {
	return std.Call("when", condition, value)
}

// Otherwise sets the value for rows no condition of when matched.
func Otherwise(when, value interface{}) (*expr.Call, error) {
	return std.Call("otherwise", when, value)
}

// Nanvl returns col1 unless it is NaN, col2 otherwise.
func Nanvl(col1, col2 interface{}) (*expr.Call, error) {
	return std.Call("nanvl", col1, col2)
}

// IsNaN 判断是否为NaN
func IsNaN(col interface{}) (*expr.Call, error) {
	return std.Call("isnan", col)
}

// IsNullFunc is the function form of IsNull.
func IsNullFunc(col interface{}) (*expr.Call, error) {
	return std.Call("isnull", col)
}
