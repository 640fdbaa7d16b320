package colexpr

import "github.com/rulego/colexpr/expr"

// Expr parses SQL text into the column it represents. The local engine rejects it.
func Expr(str interface{}) (*expr.Call, error) {
	return std.Call("expr", str)
}

// InputFileName is the name of the file being read.
func InputFileName() (*expr.Call, error) {
	return std.Call("input_file_name")
}

// MonotonicallyIncreasingID generates unique, increasing but not consecutive 64-bit ids.
func MonotonicallyIncreasingID() (*expr.Call, error) {
	return std.Call("monotonically_increasing_id")
}

// SparkPartitionID is the partition id of the row.
func SparkPartitionID() (*expr.Call, error) {
	return std.Call("spark_partition_id")
}
