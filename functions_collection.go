package colexpr

import "github.com/rulego/colexpr/expr"

// 数组与映射函数

// Struct creates a struct column; a single slice argument is expanded.
func Struct(cols ...interface{}) (*expr.Call, error) {
	return std.Call("struct", cols...)
}

// Array creates an array column; a single slice argument is expanded.
func Array(cols ...interface{}) (*expr.Call, error) {
	return std.Call("array", cols...)
}

// CreateMap creates a map from alternating key and value columns.
func CreateMap(cols ...interface{}) (*expr.Call, error) {
	return std.Call("create_map", cols...)
}

// MapConcat merges maps; a single slice argument is expanded.
func MapConcat(cols ...interface{}) (*expr.Call, error) {
	return std.Call("map_concat", cols...)
}

// Concat joins strings, binaries or arrays.
func Concat(cols ...interface{}) (*expr.Call, error) {
	return std.Call("concat", cols...)
}

// ArraysZip zips arrays into an array of structs.
func ArraysZip(cols ...interface{}) (*expr.Call, error) {
	return std.Call("arrays_zip", cols...)
}

// MapFromArrays pairs an array of keys with an array of values.
func MapFromArrays(keys, values interface{}) (*expr.Call, error) {
	return std.Call("map_from_arrays", keys, values)
}

// ArrayContains reports whether the array holds value. value is a literal.
func ArrayContains(col, value interface{}) (*expr.Call, error) {
	return std.Call("array_contains", col, value)
}

// ArraysOverlap reports whether two arrays share a non-null element.
func ArraysOverlap(a1, a2 interface{}) (*expr.Call, error) {
	return std.Call("arrays_overlap", a1, a2)
}

// Slice takes length elements from the 1-based index start.
func Slice(col, start, length interface{}) (*expr.Call, error) {
	return std.Call("slice", col, start, length)
}

// ArrayJoin joins elements with delimiter. Nulls are skipped unless nullReplacement is given.
func ArrayJoin(col, delimiter interface{}, nullReplacement ...interface{}) (*expr.Call, error) {
	return std.Call("array_join", withRest([]interface{}{col, delimiter}, nullReplacement)...)
}

// ArrayPosition 返回value首次出现的位置（从1开始），不存在为0
func ArrayPosition(col, value interface{}) (*expr.Call, error) {
	return std.Call("array_position", col, value)
}

// ElementAt is the element at the 1-based index of an array, or the value
// for the key of a map.
func ElementAt(col, extraction interface{}) (*expr.Call, error) {
	return std.Call("element_at", col, extraction)
}

// ArrayRemove drops every element equal to element.
func ArrayRemove(col, element interface{}) (*expr.Call, error) {
	return std.Call("array_remove", col, element)
}

// ArrayIntersect 两个数组的交集，去重
func ArrayIntersect(col1, col2 interface{}) (*expr.Call, error) {
	return std.Call("array_intersect", col1, col2)
}

// ArrayUnion 两个数组的并集，去重
func ArrayUnion(col1, col2 interface{}) (*expr.Call, error) {
	return std.Call("array_union", col1, col2)
}

// ArrayExcept 在col1中但不在col2中的元素，去重
func ArrayExcept(col1, col2 interface{}) (*expr.Call, error) {
	return std.Call("array_except", col1, col2)
}

// SortArray sorts ascending by default, nulls first; asc=false sorts descending.
func SortArray(col interface{}, asc ...interface{}) (*expr.Call, error) {
	return std.Call("sort_array", withRest([]interface{}{col}, asc)...)
}

// ArrayRepeat repeats col count times. A string col names a column.
func ArrayRepeat(col, count interface{}) (*expr.Call, error) {
	return std.Call("array_repeat", col, count)
}

// Sequence generates integers from start to stop, by step when given.
func Sequence(start, stop interface{}, step ...interface{}) (*expr.Call, error) {
	return std.Call("sequence", withRest([]interface{}{start, stop}, step)...)
}

// ArrayDistinct removes duplicate values.
func ArrayDistinct(col interface{}) (*expr.Call, error) {
	return std.Call("array_distinct", col)
}

// Size is the length of an array or map.
func Size(col interface{}) (*expr.Call, error) {
	return std.Call("size", col)
}

// ArrayMin 数组最小值
func ArrayMin(col interface{}) (*expr.Call, error) {
	return std.Call("array_min", col)
}

// ArrayMax 数组最大值
func ArrayMax(col interface{}) (*expr.Call, error) {
	return std.Call("array_max", col)
}

// ArraySort sorts ascending with nulls last.
func ArraySort(col interface{}) (*expr.Call, error) {
	return std.Call("array_sort", col)
}

// Shuffle returns a random permutation of the array.
func Shuffle(col interface{}) (*expr.Call, error) {
	return std.Call("shuffle", col)
}

// Reverse reverses a string or an array.
func Reverse(col interface{}) (*expr.Call, error) {
	return std.Call("reverse", col)
}

// Flatten removes one level of nesting from an array of arrays.
func Flatten(col interface{}) (*expr.Call, error) {
	return std.Call("flatten", col)
}

// MapKeys 返回map的所有键，无序
func MapKeys(col interface{}) (*expr.Call, error) {
	return std.Call("map_keys", col)
}

// MapValues 返回map的所有值，无序
func MapValues(col interface{}) (*expr.Call, error) {
	return std.Call("map_values", col)
}

// MapEntries returns the entries of a map as key/value structs.
func MapEntries(col interface{}) (*expr.Call, error) {
	return std.Call("map_entries", col)
}

// MapFromEntries is the inverse of MapEntries.
func MapFromEntries(col interface{}) (*expr.Call, error) {
	return std.Call("map_from_entries", col)
}

// Explode produces one row per array element or map entry.
func Explode(col interface{}) (*expr.Call, error) {
	return std.Call("explode", col)
}

// Posexplode is Explode plus the element position.
func Posexplode(col interface{}) (*expr.Call, error) {
	return std.Call("posexplode", col)
}

// ExplodeOuter is Explode producing a null row for null or empty input.
func ExplodeOuter(col interface{}) (*expr.Call, error) {
	return std.Call("explode_outer", col)
}

// PosexplodeOuter is Posexplode producing a null row for null or empty input.
func PosexplodeOuter(col interface{}) (*expr.Call, error) {
	return std.Call("posexplode_outer", col)
}
