package colexpr

import "github.com/rulego/colexpr/expr"

// JSON/CSV 函数，最后一个映射参数为格式选项

// GetJSONObject extracts a JSON value by a path such as "$.a.b".
func GetJSONObject(col, path interface{}) (*expr.Call, error) {
	return std.Call("get_json_object", col, path)
}

// JSONTuple extracts several top-level fields of a JSON column.
func JSONTuple(col interface{}, fields ...interface{}) (*expr.Call, error) {
	return std.Call("json_tuple", withRest([]interface{}{col}, fields)...)
}

// FromJSON parses a JSON string column with a DDL schema. An optional
// trailing map holds the parser options, e.g. map[string]string{"mode": "FAILFAST"}.
func FromJSON(col, schema interface{}, options ...interface{}) (*expr.Call, error) {
	return std.Call("from_json", withRest([]interface{}{col, schema}, options)...)
}

// ToJSON converts a struct, array or map column to a JSON string.
func ToJSON(col interface{}, options ...interface{}) (*expr.Call, error) {
	return std.Call("to_json", withRest([]interface{}{col}, options)...)
}

// SchemaOfJSON infers the DDL schema of a JSON string literal.
func SchemaOfJSON(json interface{}, options ...interface{}) (*expr.Call, error) {
	return std.Call("schema_of_json", withRest([]interface{}{json}, options)...)
}

// FromCSV parses a CSV string column with a DDL schema.
func FromCSV(col, schema interface{}, options ...interface{}) (*expr.Call, error) {
	return std.Call("from_csv", withRest([]interface{}{col, schema}, options)...)
}

// ToCSV converts a struct column to a CSV string.
func ToCSV(col interface{}, options ...interface{}) (*expr.Call, error) {
	return std.Call("to_csv", withRest([]interface{}{col}, options)...)
}

// SchemaOfCSV infers the DDL schema of a CSV string literal.
func SchemaOfCSV(csv interface{}, options ...interface{}) (*expr.Call, error) {
	return std.Call("schema_of_csv", withRest([]interface{}{csv}, options)...)
}
