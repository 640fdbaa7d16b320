package local

import (
	"math"
)

// 条件与空值处理。when/otherwise 直接编译为expr-lang的三元表达式
func init() {
	registerNullable("coalesce", func(e *Engine, args []interface{}) (interface{}, error) {
		for _, a := range args {
			if a != nil {
				return a, nil
			}
		}
		return nil, nil
	})
	registerNullable("greatest", pick(1))
	registerNullable("least", pick(-1))
	registerNullable("nanvl", func(e *Engine, args []interface{}) (interface{}, error) {
		if f, ok := args[0].(float64); ok && math.IsNaN(f) {
			return args[1], nil
		}
		return args[0], nil
	})
	registerNullable("isnan", func(e *Engine, args []interface{}) (interface{}, error) {
		f, ok := args[0].(float64)
		return ok && math.IsNaN(f), nil
	})
	registerNullable("isnull", func(e *Engine, args []interface{}) (interface{}, error) {
		return args[0] == nil, nil
	})
}

// pick greatest/least 跳过空值，全部为空时结果为空
func pick(sign int) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		var best interface{}
		for _, a := range args {
			if a == nil {
				continue
			}
			if best == nil {
				best = a
				continue
			}
			c, err := compare(a, best)
			if err != nil {
				return nil, err
			}
			if c*sign > 0 {
				best = a
			}
		}
		return best, nil
	}
}
