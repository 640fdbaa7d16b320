package functions

// 数学函数
func mathFunctions() []*Descriptor {
	log := scalar(TypeMath, "log", 1, 2, "Natural logarithm of a column, or the logarithm in the base given as first argument")
	log.ArityPolicies = map[int][]Policy{
		1: {pCol},
		2: {pLit, pCol},
	}

	return []*Descriptor{
		unary(TypeMath, "sqrt", "Calculate square root"),
		unary(TypeMath, "abs", "Calculate absolute value"),
		unary(TypeMath, "acos", "Inverse cosine"),
		unary(TypeMath, "asin", "Inverse sine"),
		unary(TypeMath, "atan", "Inverse tangent"),
		unary(TypeMath, "cbrt", "Cube root"),
		unary(TypeMath, "ceil", "Round up to the nearest integer"),
		unary(TypeMath, "cos", "Cosine of an angle in radians"),
		unary(TypeMath, "cosh", "Hyperbolic cosine"),
		unary(TypeMath, "exp", "Exponential"),
		unary(TypeMath, "expm1", "Exponential minus one"),
		unary(TypeMath, "floor", "Round down to the nearest integer"),
		log,
		unary(TypeMath, "log10", "Base 10 logarithm"),
		unary(TypeMath, "log1p", "Natural logarithm of the value plus one"),
		unary(TypeMath, "log2", "Base 2 logarithm"),
		unary(TypeMath, "rint", "Closest mathematical integer, ties to even"),
		unary(TypeMath, "signum", "Sign of the value"),
		unary(TypeMath, "sin", "Sine of an angle in radians"),
		unary(TypeMath, "sinh", "Hyperbolic sine"),
		unary(TypeMath, "tan", "Tangent of an angle in radians"),
		unary(TypeMath, "tanh", "Hyperbolic tangent"),
		unary(TypeMath, "degrees", "Convert radians to degrees"),
		unary(TypeMath, "radians", "Convert degrees to radians"),
		deprecated(unary(TypeMath, "toDegrees", "Deprecated, use degrees"), "degrees"),
		deprecated(unary(TypeMath, "toRadians", "Deprecated, use radians"), "radians"),
		unary(TypeMath, "bitwiseNOT", "Bitwise not"),
		unary(TypeMath, "factorial", "Factorial of a non-negative integer"),

		// 二元数学函数：非字符串的原始值统一转为浮点
		scalar(TypeMath, "atan2", 2, 2, "Angle theta of the polar coordinate (x, y)", pNum, pNum),
		scalar(TypeMath, "hypot", 2, 2, "sqrt(a^2 + b^2) without intermediate overflow", pNum, pNum),
		scalar(TypeMath, "pow", 2, 2, "First argument raised to the power of the second", pNum, pNum),

		scalar(TypeMath, "round", 1, 2, "Round half up to the given scale", pCol, pLit),
		scalar(TypeMath, "bround", 1, 2, "Round half even to the given scale", pCol, pLit),
		scalar(TypeMath, "shiftLeft", 2, 2, "Shift left by numBits", pCol, pLit),
		scalar(TypeMath, "shiftRight", 2, 2, "Signed shift right by numBits", pCol, pLit),
		scalar(TypeMath, "shiftRightUnsigned", 2, 2, "Unsigned shift right by numBits", pCol, pLit),
		scalar(TypeMath, "conv", 3, 3, "Convert a number string from one base to another", pCol, pLit, pLit),
		scalar(TypeMath, "bin", 1, 1, "Binary representation of a long", pCol),
		scalar(TypeMath, "hex", 1, 1, "Hexadecimal representation", pCol),
		scalar(TypeMath, "unhex", 1, 1, "Inverse of hex", pCol),
		scalar(TypeMath, "rand", 0, 1, "Uniform random value in [0, 1)", pLit),
		scalar(TypeMath, "randn", 0, 1, "Standard normal random value", pLit),
	}
}
