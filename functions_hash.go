package colexpr

import "github.com/rulego/colexpr/expr"

// 哈希函数

// CRC32 checksum of a binary column.
func CRC32(col interface{}) (*expr.Call, error) {
	return std.Call("crc32", col)
}

// MD5 digest as a 32 character hex string.
func MD5(col interface{}) (*expr.Call, error) {
	return std.Call("md5", col)
}

// SHA1 digest as a hex string.
func SHA1(col interface{}) (*expr.Call, error) {
	return std.Call("sha1", col)
}

// SHA2 digest as a hex string; numBits is 224, 256, 384, 512 or 0 (= 256).
func SHA2(col, numBits interface{}) (*expr.Call, error) {
	return std.Call("sha2", col, numBits)
}

// Hash computes a 32-bit Murmur3 hash of the columns.
func Hash(cols ...interface{}) (*expr.Call, error) {
	return std.Call("hash", cols...)
}

// XXHash64 computes a 64-bit xxHash of the columns.
func XXHash64(cols ...interface{}) (*expr.Call, error) {
	return std.Call("xxhash64", cols...)
}
