package functions

// JSON/CSV 结构化文本函数，尾部的映射参数为格式选项
func jsonFunctions() []*Descriptor {
	return []*Descriptor{
		scalar(TypeJSON, "get_json_object", 2, 2, "Extract a JSON object by path", pCol, pLit),
		scalar(TypeJSON, "json_tuple", 2, Unbounded, "Extract the given fields of a JSON column as a tuple", pCol, pLit),
		withOptions(scalar(TypeJSON, "from_json", 2, 2, "Parse a JSON string column with the given schema", pCol, pLit)),
		withOptions(scalar(TypeJSON, "to_json", 1, 1, "Convert a struct, array or map column to a JSON string", pCol)),
		withOptions(scalar(TypeJSON, "schema_of_json", 1, 1, "Infer the DDL schema of a JSON string", pLit)),
		withOptions(scalar(TypeJSON, "from_csv", 2, 2, "Parse a CSV string column with the given schema", pCol, pLit)),
		withOptions(scalar(TypeJSON, "to_csv", 1, 1, "Convert a struct column to a CSV string", pCol)),
		withOptions(scalar(TypeJSON, "schema_of_csv", 1, 1, "Infer the DDL schema of a CSV string", pLit)),
	}
}
