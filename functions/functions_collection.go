package functions

// 数组与映射函数
func collectionFunctions() []*Descriptor {
	out := []*Descriptor{
		flattened(scalar(TypeCollection, "struct", 0, Unbounded, "Struct column from the given columns", pCol)),
		flattened(scalar(TypeCollection, "array", 0, Unbounded, "Array column from the given columns", pCol)),
		flattened(scalar(TypeCollection, "create_map", 0, Unbounded, "Map column from alternating key and value columns", pCol)),
		flattened(scalar(TypeCollection, "map_concat", 0, Unbounded, "Union of the given maps", pCol)),
		scalar(TypeCollection, "concat", 0, Unbounded, "Concatenate strings, binaries or arrays", pCol),
		scalar(TypeCollection, "arrays_zip", 0, Unbounded, "Merged array of structs, the N-th holding the N-th values of the inputs", pCol),
		scalar(TypeCollection, "map_from_arrays", 2, 2, "Map from an array of keys and an array of values", pCol, pCol),
		scalar(TypeCollection, "array_contains", 2, 2, "Whether the array contains value", pCol, pLit),
		scalar(TypeCollection, "arrays_overlap", 2, 2, "Whether the two arrays share a non-null element", pCol, pCol),
		scalar(TypeCollection, "slice", 3, 3, "Elements from 1-based index start with the given length", pCol, pLit, pLit),
		scalar(TypeCollection, "array_join", 2, 3, "Concatenate elements with delimiter, nulls replaced if a replacement is set", pCol, pLit, pLit),
		scalar(TypeCollection, "array_position", 2, 2, "1-based position of the first occurrence of value, 0 if absent", pCol, pLit),
		scalar(TypeCollection, "element_at", 2, 2, "Element at 1-based index, or value for key", pCol, pLit),
		scalar(TypeCollection, "array_remove", 2, 2, "Remove all elements equal to element", pCol, pLit),
		scalar(TypeCollection, "array_intersect", 2, 2, "Elements in both arrays without duplicates", pCol, pCol),
		scalar(TypeCollection, "array_union", 2, 2, "Elements in either array without duplicates", pCol, pCol),
		scalar(TypeCollection, "array_except", 2, 2, "Elements of the first array not in the second, without duplicates", pCol, pCol),
		scalar(TypeCollection, "sort_array", 1, 2, "Sort ascending or descending, nulls first when ascending", pCol, pLit),
		scalar(TypeCollection, "array_repeat", 2, 2, "Array containing the column repeated count times", pCol, pLit),
		scalar(TypeCollection, "sequence", 2, 3, "Integers from start to stop by step", pCol, pCol, pCol),
	}
	for _, f := range []struct {
		name, description string
	}{
		{"array_distinct", "Remove duplicate values"},
		{"size", "Length of an array or map"},
		{"array_min", "Minimum value of an array"},
		{"array_max", "Maximum value of an array"},
		{"array_sort", "Sort ascending, nulls last"},
		{"shuffle", "Random permutation of an array"},
		{"reverse", "Reversed string or array"},
		{"flatten", "Flatten an array of arrays by one level"},
		{"map_keys", "Unordered array of map keys"},
		{"map_values", "Unordered array of map values"},
		{"map_entries", "Unordered array of map entries"},
		{"map_from_entries", "Map from an array of key/value structs"},
		{"explode", "One row per array element or map entry"},
		{"posexplode", "One row per array element with its position"},
		{"explode_outer", "Like explode, producing null for null or empty input"},
		{"posexplode_outer", "Like posexplode, producing null for null or empty input"},
	} {
		out = append(out, unary(TypeCollection, f.name, f.description))
	}
	return out
}
