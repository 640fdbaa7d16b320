package local

// 单分区、无输入文件时的取值
func init() {
	register("input_file_name", func(e *Engine, args []interface{}) (interface{}, error) {
		return "", nil
	})
	register("spark_partition_id", func(e *Engine, args []interface{}) (interface{}, error) {
		return int64(0), nil
	})
	register("monotonically_increasing_id", func(e *Engine, args []interface{}) (interface{}, error) {
		return e.ids.Add(1) - 1, nil
	})
}
