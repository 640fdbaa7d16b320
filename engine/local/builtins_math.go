package local

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// 数学函数
func init() {
	for name, fn := range map[string]func(float64) float64{
		"acos":  math.Acos,
		"asin":  math.Asin,
		"atan":  math.Atan,
		"cbrt":  math.Cbrt,
		"cos":   math.Cos,
		"cosh":  math.Cosh,
		"exp":   math.Exp,
		"expm1": math.Expm1,
		"rint":  math.RoundToEven,
		"sin":   math.Sin,
		"sinh":  math.Sinh,
		"sqrt":  math.Sqrt,
		"tan":   math.Tan,
		"tanh":  math.Tanh,
		"degrees": func(x float64) float64 {
			return x * 180 / math.Pi
		},
		"radians": func(x float64) float64 {
			return x * math.Pi / 180
		},
		"signum": func(x float64) float64 {
			switch {
			case math.IsNaN(x):
				return x
			case x > 0:
				return 1
			case x < 0:
				return -1
			}
			return 0
		},
	} {
		register(name, unaryFloat(fn))
	}

	// 对数的定义域外结果为空
	for name, fn := range map[string]func(float64) float64{
		"log10": math.Log10,
		"log2":  math.Log2,
		"log1p": func(x float64) float64 {
			if x <= -1 {
				return math.NaN()
			}
			return math.Log1p(x)
		},
	} {
		register(name, func(e *Engine, args []interface{}) (interface{}, error) {
			x, err := toFloat(args[0])
			if err != nil {
				return nil, err
			}
			if name != "log1p" && x <= 0 {
				return nil, nil
			}
			y := fn(x)
			if math.IsNaN(y) {
				return nil, nil
			}
			return y, nil
		})
	}
	register("log", func(e *Engine, args []interface{}) (interface{}, error) {
		if len(args) == 1 {
			x, err := toFloat(args[0])
			if err != nil || x <= 0 {
				return nil, err
			}
			return math.Log(x), nil
		}
		base, x, err := floats(args[0], args[1])
		if err != nil {
			return nil, err
		}
		if base <= 0 || x <= 0 {
			return nil, nil
		}
		return math.Log(x) / math.Log(base), nil
	})

	register("abs", func(e *Engine, args []interface{}) (interface{}, error) {
		n, err := numeric(args[0])
		if err != nil {
			return nil, err
		}
		if i, ok := n.(int64); ok {
			if i < 0 {
				return -i, nil
			}
			return i, nil
		}
		return math.Abs(n.(float64)), nil
	})
	register("ceil", rounding(math.Ceil))
	register("floor", rounding(math.Floor))

	register("atan2", binaryFloat(math.Atan2))
	register("hypot", binaryFloat(math.Hypot))
	register("pow", binaryFloat(math.Pow))

	register("round", scaled(math.Round))
	register("bround", scaled(math.RoundToEven))

	register("bitwiseNOT", func(e *Engine, args []interface{}) (interface{}, error) {
		i, err := toInt(args[0])
		if err != nil {
			return nil, err
		}
		return ^i, nil
	})
	register("factorial", func(e *Engine, args []interface{}) (interface{}, error) {
		n, err := toInt(args[0])
		if err != nil {
			return nil, err
		}
		if n < 0 || n > 20 {
			return nil, nil
		}
		out := int64(1)
		for i := int64(2); i <= n; i++ {
			out *= i
		}
		return out, nil
	})
	register("shiftLeft", shift(func(v int64, n uint) int64 { return v << n }))
	register("shiftRight", shift(func(v int64, n uint) int64 { return v >> n }))
	register("shiftRightUnsigned", shift(func(v int64, n uint) int64 { return int64(uint64(v) >> n) }))

	register("conv", func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		from, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		to, err := toInt(args[2])
		if err != nil {
			return nil, err
		}
		return convert(s, int(from), int(to)), nil
	})
	register("bin", func(e *Engine, args []interface{}) (interface{}, error) {
		i, err := toInt(args[0])
		if err != nil {
			return nil, err
		}
		return strconv.FormatUint(uint64(i), 2), nil
	})
	register("hex", func(e *Engine, args []interface{}) (interface{}, error) {
		switch x := args[0].(type) {
		case int64:
			return strings.ToUpper(strconv.FormatUint(uint64(x), 16)), nil
		case float64:
			return strings.ToUpper(strconv.FormatUint(uint64(int64(x)), 16)), nil
		}
		b, err := toBytes(args[0])
		if err != nil {
			return nil, err
		}
		return strings.ToUpper(hex.EncodeToString(b)), nil
	})
	register("unhex", func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		if len(s)%2 == 1 {
			s = "0" + s
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, nil
		}
		return b, nil
	})
}

func unaryFloat(fn func(float64) float64) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		x, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return fn(x), nil
	}
}

func binaryFloat(fn func(a, b float64) float64) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		a, b, err := floats(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

// rounding ceil/floor 的结果为整数
func rounding(fn func(float64) float64) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		n, err := numeric(args[0])
		if err != nil {
			return nil, err
		}
		if i, ok := n.(int64); ok {
			return i, nil
		}
		f := fn(n.(float64))
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64 {
			return f, nil
		}
		return int64(f), nil
	}
}

// scaled 按小数位数舍入，scale可以为负数
func scaled(fn func(float64) float64) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		scale := int64(0)
		if len(args) > 1 {
			s, err := toInt(args[1])
			if err != nil {
				return nil, err
			}
			scale = s
		}
		n, err := numeric(args[0])
		if err != nil {
			return nil, err
		}
		if i, ok := n.(int64); ok {
			if scale >= 0 {
				return i, nil
			}
			p := math.Pow10(int(-scale))
			return int64(fn(float64(i)/p) * p), nil
		}
		x := n.(float64)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return x, nil
		}
		// 借助十进制文本避免 2.675*100 之类的二进制误差
		shifted, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', -1, 64)+"e"+strconv.FormatInt(scale, 10), 64)
		if err != nil {
			return nil, err
		}
		if scale < 0 {
			return fn(shifted) * math.Pow10(int(-scale)), nil
		}
		return fn(shifted) / math.Pow10(int(scale)), nil
	}
}

func shift(fn func(v int64, n uint) int64) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		v, err := toInt(args[0])
		if err != nil {
			return nil, err
		}
		n, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		// 与JVM一致，位移量取低6位
		return fn(v, uint(n&63)), nil
	}
}

// convert 进制转换，非法输入取最长合法前缀，负的目标进制按有符号输出
func convert(s string, from, to int) interface{} {
	if from < 2 || from > 36 || to == 0 || to < -36 || to > 36 || (to > -2 && to < 2) {
		return nil
	}
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	end := 0
	for end < len(s) {
		if _, err := strconv.ParseUint(s[end:end+1], from, 64); err != nil {
			break
		}
		end++
	}
	if end == 0 {
		return nil
	}
	u, err := strconv.ParseUint(s[:end], from, 64)
	if err != nil {
		u = math.MaxUint64
	}
	if to < 0 {
		v := int64(u)
		if neg {
			v = -v
		}
		return strings.ToUpper(strconv.FormatInt(v, -to))
	}
	if neg {
		u = -u
	}
	return strings.ToUpper(strconv.FormatUint(u, to))
}
