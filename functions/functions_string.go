package functions

// 字符串函数
func stringFunctions() []*Descriptor {
	return []*Descriptor{
		unary(TypeString, "upper", "Convert to upper case"),
		unary(TypeString, "lower", "Convert to lower case"),
		unary(TypeString, "ascii", "Numeric value of the first character"),
		unary(TypeString, "base64", "BASE64 encoding of a binary column"),
		unary(TypeString, "unbase64", "Decode a BASE64 encoded string into binary"),
		unary(TypeString, "ltrim", "Trim spaces from the left end"),
		unary(TypeString, "rtrim", "Trim spaces from the right end"),
		unary(TypeString, "trim", "Trim spaces from both ends"),
		unary(TypeString, "initcap", "Capitalize the first letter of each word"),
		unary(TypeString, "soundex", "SoundEx encoding"),
		unary(TypeString, "length", "Character length of a string or byte length of binary"),

		scalar(TypeString, "concat_ws", 1, Unbounded, "Concatenate columns with the given separator", pLit, pCol),
		scalar(TypeString, "format_string", 1, Unbounded, "printf-style formatting of columns", pLit, pCol),
		scalar(TypeString, "decode", 2, 2, "Decode binary using the given charset", pCol, pLit),
		scalar(TypeString, "encode", 2, 2, "Encode a string using the given charset", pCol, pLit),
		scalar(TypeString, "format_number", 2, 2, "Format a number like '#,###,###.##' with d decimal places", pCol, pLit),
		scalar(TypeString, "instr", 2, 2, "1-based position of the first occurrence of substr", pCol, pLit),
		scalar(TypeString, "locate", 2, 3, "Position of the first occurrence of substr after pos", pLit, pCol, pLit),
		scalar(TypeString, "overlay", 3, 4, "Replace len bytes of src starting at pos with replace", pCol, pCol, pCol, pCol),
		scalar(TypeString, "substring", 3, 3, "Substring starting at pos of length len", pCol, pLit, pLit),
		// 三个参数都按字面量处理
		scalar(TypeString, "substring_index", 3, 3, "Substring before count occurrences of delim", pLit, pLit, pLit),
		scalar(TypeString, "levenshtein", 2, 2, "Levenshtein distance of two strings", pCol, pCol),
		scalar(TypeString, "lpad", 3, 3, "Left-pad to width len with pad", pCol, pLit, pLit),
		scalar(TypeString, "rpad", 3, 3, "Right-pad to width len with pad", pCol, pLit, pLit),
		scalar(TypeString, "repeat", 2, 2, "Repeat a string n times", pCol, pLit),
		scalar(TypeString, "split", 2, 3, "Split around matches of a regular expression", pCol, pLit, pLit),
		scalar(TypeString, "regexp_extract", 3, 3, "Extract a group matched by a regular expression", pCol, pLit, pLit),
		scalar(TypeString, "regexp_replace", 3, 3, "Replace all substrings matching a regular expression", pCol, pLit, pLit),
		scalar(TypeString, "translate", 3, 3, "Replace characters in matching by the character at the same position in replace", pCol, pLit, pLit),
	}
}
