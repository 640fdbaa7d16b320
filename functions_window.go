package colexpr

import "github.com/rulego/colexpr/expr"

// 排名与偏移函数

// RowNumber numbers rows from 1 within a window partition.
func RowNumber() (*expr.Call, error) {
	return std.Call("row_number")
}

// DenseRank 窗口内排名，无间隔
func DenseRank() (*expr.Call, error) {
	return std.Call("dense_rank")
}

// Rank 窗口内排名，有间隔
func Rank() (*expr.Call, error) {
	return std.Call("rank")
}

// CumeDist is the cumulative distribution of values within a window partition.
func CumeDist() (*expr.Call, error) {
	return std.Call("cume_dist")
}

// PercentRank is the relative rank of rows within a window partition.
func PercentRank() (*expr.Call, error) {
	return std.Call("percent_rank")
}

// Ntile splits an ordered window partition into n groups numbered from 1.
func Ntile(n interface{}) (*expr.Call, error) {
	return std.Call("ntile", n)
}

// Lag is the value offset rows before the current row, default 1.
func Lag(col interface{}, offsetAndDefault ...interface{}) (*expr.Call, error) {
	return std.Call("lag", withRest([]interface{}{col}, offsetAndDefault)...)
}

// Lead is the value offset rows after the current row, default 1.
func Lead(col interface{}, offsetAndDefault ...interface{}) (*expr.Call, error) {
	return std.Call("lead", withRest([]interface{}{col}, offsetAndDefault)...)
}
