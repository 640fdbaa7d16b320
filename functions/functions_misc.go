package functions

func miscFunctions() []*Descriptor {
	return []*Descriptor{
		scalar(TypeMisc, "expr", 1, 1, "Parse an expression string into the column it represents", pLit),
		scalar(TypeMisc, "input_file_name", 0, 0, "Name of the file being read"),
		scalar(TypeMisc, "monotonically_increasing_id", 0, 0, "Monotonically increasing and unique, but not consecutive, 64-bit integers"),
		scalar(TypeMisc, "spark_partition_id", 0, 0, "Partition id of the row"),
	}
}
