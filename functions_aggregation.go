package colexpr

import "github.com/rulego/colexpr/expr"

// 聚合函数，只构建表达式，求值需要分组上下文

// Max is the largest value of col in a group.
func Max(col interface{}) (*expr.Call, error) {
	return std.Call("max", col)
}

// Min is the smallest value of col in a group.
func Min(col interface{}) (*expr.Call, error) {
	return std.Call("min", col)
}

// Count counts the non-null values of col.
func Count(col interface{}) (*expr.Call, error) {
	return std.Call("count", col)
}

// Sum adds up the values of col.
func Sum(col interface{}) (*expr.Call, error) {
	return std.Call("sum", col)
}

// Avg 分组内的平均值
func Avg(col interface{}) (*expr.Call, error) {
	return std.Call("avg", col)
}

// Mean is an alias of Avg.
func Mean(col interface{}) (*expr.Call, error) {
	return std.Call("mean", col)
}

// SumDistinct sums the distinct values of col.
func SumDistinct(col interface{}) (*expr.Call, error) {
	return std.Call("sumDistinct", col)
}

// Stddev is an alias of StddevSamp.
func Stddev(col interface{}) (*expr.Call, error) {
	return std.Call("stddev", col)
}

// StddevSamp 样本标准差
func StddevSamp(col interface{}) (*expr.Call, error) {
	return std.Call("stddev_samp", col)
}

// StddevPop 总体标准差
func StddevPop(col interface{}) (*expr.Call, error) {
	return std.Call("stddev_pop", col)
}

// Variance is an alias of VarSamp.
func Variance(col interface{}) (*expr.Call, error) {
	return std.Call("variance", col)
}

// VarSamp 样本方差
func VarSamp(col interface{}) (*expr.Call, error) {
	return std.Call("var_samp", col)
}

// VarPop 总体方差
func VarPop(col interface{}) (*expr.Call, error) {
	return std.Call("var_pop", col)
}

// Skewness of the values in a group.
func Skewness(col interface{}) (*expr.Call, error) {
	return std.Call("skewness", col)
}

// Kurtosis of the values in a group.
func Kurtosis(col interface{}) (*expr.Call, error) {
	return std.Call("kurtosis", col)
}

// CollectList gathers the values of col into an array, duplicates kept.
func CollectList(col interface{}) (*expr.Call, error) {
	return std.Call("collect_list", col)
}

// CollectSet gathers the distinct values of col into an array.
func CollectSet(col interface{}) (*expr.Call, error) {
	return std.Call("collect_set", col)
}

// Grouping reports whether col is aggregated in a GROUP BY list.
func Grouping(col interface{}) (*expr.Call, error) {
	return std.Call("grouping", col)
}

// ApproxCountDistinct estimates the number of distinct items; rsd is the
// maximum relative standard deviation allowed.
func ApproxCountDistinct(col interface{}, rsd ...interface{}) (*expr.Call, error) {
	return std.Call("approx_count_distinct", withRest([]interface{}{col}, rsd)...)
}

// CountDistinct counts distinct combinations of the given columns.
func CountDistinct(col interface{}, cols ...interface{}) (*expr.Call, error) {
	return std.Call("countDistinct", withRest([]interface{}{col}, cols)...)
}

// Corr is the Pearson correlation coefficient of two columns.
func Corr(col1, col2 interface{}) (*expr.Call, error) {
	return std.Call("corr", col1, col2)
}

// CovarPop 总体协方差
func CovarPop(col1, col2 interface{}) (*expr.Call, error) {
	return std.Call("covar_pop", col1, col2)
}

// CovarSamp 样本协方差
func CovarSamp(col1, col2 interface{}) (*expr.Call, error) {
	return std.Call("covar_samp", col1, col2)
}

// First returns the first value in a group; pass true to skip nulls.
func First(col interface{}, ignoreNulls ...interface{}) (*expr.Call, error) {
	return std.Call("first", withRest([]interface{}{col}, ignoreNulls)...)
}

// Last returns the last value in a group; pass true to skip nulls.
func Last(col interface{}, ignoreNulls ...interface{}) (*expr.Call, error) {
	return std.Call("last", withRest([]interface{}{col}, ignoreNulls)...)
}

// GroupingID is the level of grouping of the given columns.
func GroupingID(cols ...interface{}) (*expr.Call, error) {
	return std.Call("grouping_id", cols...)
}
