package colexpr

import "github.com/rulego/colexpr/expr"

// 字符串函数

// Upper converts to upper case.
func Upper(col interface{}) (*expr.Call, error) {
	return std.Call("upper", col)
}

// Lower converts to lower case.
func Lower(col interface{}) (*expr.Call, error) {
	return std.Call("lower", col)
}

// ASCII returns the code point of the first character.
func ASCII(col interface{}) (*expr.Call, error) {
	return std.Call("ascii", col)
}

// Base64 encodes a binary column.
func Base64(col interface{}) (*expr.Call, error) {
	return std.Call("base64", col)
}

// Unbase64 decodes a base64 string into binary.
func Unbase64(col interface{}) (*expr.Call, error) {
	return std.Call("unbase64", col)
}

// Ltrim 去掉左侧空格
func Ltrim(col interface{}) (*expr.Call, error) {
	return std.Call("ltrim", col)
}

// Rtrim 去掉右侧空格
func Rtrim(col interface{}) (*expr.Call, error) {
	return std.Call("rtrim", col)
}

// Trim 去掉两侧空格
func Trim(col interface{}) (*expr.Call, error) {
	return std.Call("trim", col)
}

// Initcap capitalizes the first letter of each word.
func Initcap(col interface{}) (*expr.Call, error) {
	return std.Call("initcap", col)
}

// Soundex encoding of a string.
func Soundex(col interface{}) (*expr.Call, error) {
	return std.Call("soundex", col)
}

// Length counts characters of a string, or bytes of a binary.
func Length(col interface{}) (*expr.Call, error) {
	return std.Call("length", col)
}

// ConcatWS concatenates the columns with sep, skipping nulls.
func ConcatWS(sep interface{}, cols ...interface{}) (*expr.Call, error) {
	return std.Call("concat_ws", withRest([]interface{}{sep}, cols)...)
}

// FormatString formats the columns printf-style.
func FormatString(format interface{}, cols ...interface{}) (*expr.Call, error) {
	return std.Call("format_string", withRest([]interface{}{format}, cols)...)
}

// Decode converts binary to a string using charset, e.g. "UTF-8".
func Decode(col, charset interface{}) (*expr.Call, error) {
	return std.Call("decode", col, charset)
}

// Encode converts a string to binary using charset.
func Encode(col, charset interface{}) (*expr.Call, error) {
	return std.Call("encode", col, charset)
}

// FormatNumber formats col like '#,###,###.##' rounded to d decimal places.
func FormatNumber(col, d interface{}) (*expr.Call, error) {
	return std.Call("format_number", col, d)
}

// Instr 返回substr首次出现的位置（从1开始）
func Instr(col, substr interface{}) (*expr.Call, error) {
	return std.Call("instr", col, substr)
}

// Locate is the 1-based position of substr in col after pos, or 0.
func Locate(substr, col interface{}, pos ...interface{}) (*expr.Call, error) {
	return std.Call("locate", withRest([]interface{}{substr, col}, pos)...)
}

// Overlay replaces length bytes of src starting at pos with replace.
func Overlay(src, replace, pos interface{}, length ...interface{}) (*expr.Call, error) {
	return std.Call("overlay", withRest([]interface{}{src, replace, pos}, length)...)
}

// Substring takes length characters starting at the 1-based pos.
func Substring(col, pos, length interface{}) (*expr.Call, error) {
	return std.Call("substring", col, pos, length)
}

// SubstringIndex returns the substring before count occurrences of delim.
// All three arguments are literals: SubstringIndex("a.b.c.d", ".", 2).
func SubstringIndex(str, delim, count interface{}) (*expr.Call, error) {
	return std.Call("substring_index", str, delim, count)
}

// Levenshtein distance of two strings.
func Levenshtein(left, right interface{}) (*expr.Call, error) {
	return std.Call("levenshtein", left, right)
}

// Lpad left-pads col to length with pad.
func Lpad(col, length, pad interface{}) (*expr.Call, error) {
	return std.Call("lpad", col, length, pad)
}

// Rpad right-pads col to length with pad.
func Rpad(col, length, pad interface{}) (*expr.Call, error) {
	return std.Call("rpad", col, length, pad)
}

// Repeat repeats a string n times.
func Repeat(col, n interface{}) (*expr.Call, error) {
	return std.Call("repeat", col, n)
}

// Split splits col around matches of the regular expression pattern.
func Split(col, pattern interface{}, limit ...interface{}) (*expr.Call, error) {
	return std.Call("split", withRest([]interface{}{col, pattern}, limit)...)
}

// RegexpExtract extracts group idx of the first match of pattern.
func RegexpExtract(col, pattern, idx interface{}) (*expr.Call, error) {
	return std.Call("regexp_extract", col, pattern, idx)
}

// RegexpReplace replaces every match of pattern.
func RegexpReplace(col, pattern, replacement interface{}) (*expr.Call, error) {
	return std.Call("regexp_replace", col, pattern, replacement)
}

// Translate maps each character in matching to the one at the same position in replace.
func Translate(col, matching, replace interface{}) (*expr.Call, error) {
	return std.Call("translate", col, matching, replace)
}
