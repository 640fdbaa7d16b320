package colexpr

import "github.com/rulego/colexpr/expr"

// 数学函数。单参数函数接受列名、表达式或数值

// Sqrt computes the square root.
func Sqrt(col interface{}) (*expr.Call, error) {
	return std.Call("sqrt", col)
}

// Acos 反余弦
func Acos(col interface{}) (*expr.Call, error) {
	return std.Call("acos", col)
}

// Asin 反正弦
func Asin(col interface{}) (*expr.Call, error) {
	return std.Call("asin", col)
}

// Atan 反正切
func Atan(col interface{}) (*expr.Call, error) {
	return std.Call("atan", col)
}

// Cbrt computes the cube root.
func Cbrt(col interface{}) (*expr.Call, error) {
	return std.Call("cbrt", col)
}

// Cos of an angle in radians.
func Cos(col interface{}) (*expr.Call, error) {
	return std.Call("cos", col)
}

// Cosh 双曲余弦
func Cosh(col interface{}) (*expr.Call, error) {
	return std.Call("cosh", col)
}

// Exp computes e raised to col.
func Exp(col interface{}) (*expr.Call, error) {
	return std.Call("exp", col)
}

// Expm1 computes exp(col) - 1.
func Expm1(col interface{}) (*expr.Call, error) {
	return std.Call("expm1", col)
}

// Log10 base 10 logarithm.
func Log10(col interface{}) (*expr.Call, error) {
	return std.Call("log10", col)
}

// Log1p computes ln(col + 1).
func Log1p(col interface{}) (*expr.Call, error) {
	return std.Call("log1p", col)
}

// Log2 base 2 logarithm.
func Log2(col interface{}) (*expr.Call, error) {
	return std.Call("log2", col)
}

// Rint rounds to the closest integer, ties to even.
func Rint(col interface{}) (*expr.Call, error) {
	return std.Call("rint", col)
}

// Signum returns -1, 0 or 1 by the sign of col.
func Signum(col interface{}) (*expr.Call, error) {
	return std.Call("signum", col)
}

// Sin of an angle in radians.
func Sin(col interface{}) (*expr.Call, error) {
	return std.Call("sin", col)
}

// Sinh 双曲正弦
func Sinh(col interface{}) (*expr.Call, error) {
	return std.Call("sinh", col)
}

// Tan of an angle in radians.
func Tan(col interface{}) (*expr.Call, error) {
	return std.Call("tan", col)
}

// Tanh 双曲正切
func Tanh(col interface{}) (*expr.Call, error) {
	return std.Call("tanh", col)
}

// Abs computes the absolute value.
func Abs(col interface{}) (*expr.Call, error) {
	return std.Call("abs", col)
}

// Ceil rounds up to the nearest integer.
func Ceil(col interface{}) (*expr.Call, error) {
	return std.Call("ceil", col)
}

// Floor rounds down to the nearest integer.
func Floor(col interface{}) (*expr.Call, error) {
	return std.Call("floor", col)
}

// Log is the natural logarithm of col, or with two arguments
// Log(base, col) the logarithm of col in base.
func Log(col interface{}, arg ...interface{}) (*expr.Call, error) {
	return std.Call("log", withRest([]interface{}{col}, arg)...)
}

// Degrees converts radians to degrees.
func Degrees(col interface{}) (*expr.Call, error) {
	return std.Call("degrees", col)
}

// Radians converts degrees to radians.
func Radians(col interface{}) (*expr.Call, error) {
	return std.Call("radians", col)
}

// ToDegrees converts radians to degrees.
//
// Deprecated: use Degrees.
func ToDegrees(col interface{}) (*expr.Call, error) {
	return std.Call("toDegrees", col)
}

// ToRadians converts degrees to radians.
//
// Deprecated: use Radians.
func ToRadians(col interface{}) (*expr.Call, error) {
	return std.Call("toRadians", col)
}

// BitwiseNOT 按位取反
func BitwiseNOT(col interface{}) (*expr.Call, error) {
	return std.Call("bitwiseNOT", col)
}

// Factorial of a non-negative integer, null above 20.
func Factorial(col interface{}) (*expr.Call, error) {
	return std.Call("factorial", col)
}

// Atan2 returns the angle theta of the polar coordinate (x, y).
// Raw numbers are coerced to float literals; strings name columns.
func Atan2(y, x interface{}) (*expr.Call, error) {
	return std.Call("atan2", y, x)
}

// Hypot computes sqrt(a^2 + b^2) without intermediate overflow.
func Hypot(a, b interface{}) (*expr.Call, error) {
	return std.Call("hypot", a, b)
}

// Pow raises base to exponent.
func Pow(base, exponent interface{}) (*expr.Call, error) {
	return std.Call("pow", base, exponent)
}

// Round rounds half up to scale decimal places, 0 by default.
func Round(col interface{}, scale ...interface{}) (*expr.Call, error) {
	return std.Call("round", withRest([]interface{}{col}, scale)...)
}

// Bround rounds half to even to scale decimal places, 0 by default.
func Bround(col interface{}, scale ...interface{}) (*expr.Call, error) {
	return std.Call("bround", withRest([]interface{}{col}, scale)...)
}

// ShiftLeft shifts col left by numBits.
func ShiftLeft(col, numBits interface{}) (*expr.Call, error) {
	return std.Call("shiftLeft", col, numBits)
}

// ShiftRight is a signed shift right.
func ShiftRight(col, numBits interface{}) (*expr.Call, error) {
	return std.Call("shiftRight", col, numBits)
}

// ShiftRightUnsigned is an unsigned shift right.
func ShiftRightUnsigned(col, numBits interface{}) (*expr.Call, error) {
	return std.Call("shiftRightUnsigned", col, numBits)
}

// Conv converts a number string from one base to another.
func Conv(col, fromBase, toBase interface{}) (*expr.Call, error) {
	return std.Call("conv", col, fromBase, toBase)
}

// Bin 长整数的二进制字符串
func Bin(col interface{}) (*expr.Call, error) {
	return std.Call("bin", col)
}

// Hex 十六进制表示
func Hex(col interface{}) (*expr.Call, error) {
	return std.Call("hex", col)
}

// Unhex is the inverse of Hex.
func Unhex(col interface{}) (*expr.Call, error) {
	return std.Call("unhex", col)
}

// Rand is a uniform random value in [0, 1).
func Rand(seed ...interface{}) (*expr.Call, error) {
	return std.Call("rand", seed...)
}

// Randn is a standard normal random value.
func Randn(seed ...interface{}) (*expr.Call, error) {
	return std.Call("randn", seed...)
}
