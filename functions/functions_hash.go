package functions

// 哈希函数
func hashFunctions() []*Descriptor {
	return []*Descriptor{
		unary(TypeHash, "crc32", "Cyclic redundancy check value of a binary column as a bigint"),
		unary(TypeHash, "md5", "MD5 digest as a 32 character hex string"),
		unary(TypeHash, "sha1", "SHA-1 digest as a hex string"),
		scalar(TypeHash, "sha2", 2, 2, "SHA-2 family digest as a hex string, numBits is 224, 256, 384, 512 or 0", pCol, pLit),
		scalar(TypeHash, "hash", 0, Unbounded, "Hash code of the given columns as an int", pCol),
		scalar(TypeHash, "xxhash64", 0, Unbounded, "64-bit xxHash of the given columns as a long", pCol),
	}
}
