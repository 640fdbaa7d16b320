package local

import (
	"fmt"
	"sort"
)

// 数组与映射函数。struct 与 arrays_zip 的第一个参数由引擎生成：字段名列表
func init() {
	registerNullable("struct", func(e *Engine, args []interface{}) (interface{}, error) {
		names, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		values := args[1:]
		out := make(map[string]interface{}, len(values))
		for i, v := range values {
			out[names[i].(string)] = v
		}
		return out, nil
	})
	registerNullable("array", func(e *Engine, args []interface{}) (interface{}, error) {
		return append([]interface{}{}, args...), nil
	})
	registerNullable("create_map", func(e *Engine, args []interface{}) (interface{}, error) {
		if len(args)%2 != 0 {
			return nil, fmt.Errorf("expects a positive even number of arguments, got %d", len(args))
		}
		out := make(map[string]interface{}, len(args)/2)
		for i := 0; i < len(args); i += 2 {
			if args[i] == nil {
				return nil, fmt.Errorf("cannot use null as map key")
			}
			k, err := toText(args[i])
			if err != nil {
				return nil, err
			}
			out[k] = args[i+1]
		}
		return out, nil
	})
	register("map_concat", func(e *Engine, args []interface{}) (interface{}, error) {
		out := map[string]interface{}{}
		for _, a := range args {
			m, err := toMap(a)
			if err != nil {
				return nil, err
			}
			for k, v := range m {
				out[k] = v
			}
		}
		return out, nil
	})
	register("concat", func(e *Engine, args []interface{}) (interface{}, error) {
		if len(args) > 0 {
			if _, ok := args[0].([]interface{}); ok {
				var out []interface{}
				for _, a := range args {
					l, err := toList(a)
					if err != nil {
						return nil, err
					}
					out = append(out, l...)
				}
				if out == nil {
					out = []interface{}{}
				}
				return out, nil
			}
		}
		var s string
		for _, a := range args {
			t, err := toText(a)
			if err != nil {
				return nil, err
			}
			s += t
		}
		return s, nil
	})
	register("arrays_zip", func(e *Engine, args []interface{}) (interface{}, error) {
		names, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		lists := make([][]interface{}, len(args)-1)
		size := 0
		for i, a := range args[1:] {
			if lists[i], err = toList(a); err != nil {
				return nil, err
			}
			size = max(size, len(lists[i]))
		}
		out := make([]interface{}, size)
		for j := range out {
			row := make(map[string]interface{}, len(lists))
			for i, l := range lists {
				var v interface{}
				if j < len(l) {
					v = l[j]
				}
				row[names[i].(string)] = v
			}
			out[j] = row
		}
		return out, nil
	})
	register("map_from_arrays", func(e *Engine, args []interface{}) (interface{}, error) {
		keys, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		values, err := toList(args[1])
		if err != nil {
			return nil, err
		}
		if len(keys) != len(values) {
			return nil, fmt.Errorf("the key array and value array must have the same length")
		}
		pairs := make([]interface{}, 0, 2*len(keys))
		for i := range keys {
			pairs = append(pairs, keys[i], values[i])
		}
		return builtins["create_map"].fn(e, pairs)
	})
	register("array_contains", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		sawNull := false
		for _, v := range l {
			if v == nil {
				sawNull = true
			} else if equal(v, args[1]) {
				return true, nil
			}
		}
		if sawNull {
			return nil, nil
		}
		return false, nil
	})
	register("arrays_overlap", func(e *Engine, args []interface{}) (interface{}, error) {
		a, b, err := lists(args[0], args[1])
		if err != nil {
			return nil, err
		}
		sawNull := false
		for _, x := range a {
			if x == nil {
				sawNull = true
				continue
			}
			for _, y := range b {
				if y == nil {
					sawNull = true
				} else if equal(x, y) {
					return true, nil
				}
			}
		}
		if sawNull && len(a) > 0 && len(b) > 0 {
			return nil, nil
		}
		return false, nil
	})
	register("slice", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		start, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		n, err := toInt(args[2])
		if err != nil {
			return nil, err
		}
		if start == 0 {
			return nil, fmt.Errorf("unexpected value for start: SQL array indices start at 1")
		}
		if n < 0 {
			return nil, fmt.Errorf("unexpected value for length: %d, it must be >= 0", n)
		}
		size := int64(len(l))
		from := start - 1
		if start < 0 {
			from = size + start
		}
		if from < 0 || from >= size {
			return []interface{}{}, nil
		}
		to := clamp(from+n, from, size)
		return append([]interface{}{}, l[from:to]...), nil
	})
	register("array_join", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		delim, err := toText(args[1])
		if err != nil {
			return nil, err
		}
		var replacement *string
		if len(args) > 2 {
			r, err := toText(args[2])
			if err != nil {
				return nil, err
			}
			replacement = &r
		}
		var out string
		first := true
		for _, v := range l {
			var s string
			switch {
			case v != nil:
				if s, err = toText(v); err != nil {
					return nil, err
				}
			case replacement != nil:
				s = *replacement
			default:
				continue
			}
			if !first {
				out += delim
			}
			out += s
			first = false
		}
		return out, nil
	})
	register("array_position", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		for i, v := range l {
			if equal(v, args[1]) {
				return int64(i + 1), nil
			}
		}
		return int64(0), nil
	})
	register("element_at", func(e *Engine, args []interface{}) (interface{}, error) {
		if m, ok := args[0].(map[string]interface{}); ok {
			k, err := toText(args[1])
			if err != nil {
				return nil, err
			}
			return m[k], nil
		}
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		i, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		switch {
		case i == 0:
			return nil, fmt.Errorf("SQL array indices start at 1")
		case i > 0 && i <= int64(len(l)):
			return l[i-1], nil
		case i < 0 && -i <= int64(len(l)):
			return l[int64(len(l))+i], nil
		}
		return nil, nil
	})
	register("array_remove", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		out := []interface{}{}
		for _, v := range l {
			if !equal(v, args[1]) {
				out = append(out, v)
			}
		}
		return out, nil
	})
	register("array_intersect", setOp(func(inA, inB bool) bool { return inA && inB }))
	register("array_union", setOp(func(inA, inB bool) bool { return inA || inB }))
	register("array_except", setOp(func(inA, inB bool) bool { return inA && !inB }))
	register("array_distinct", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		return distinct(l), nil
	})
	register("sort_array", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		asc := true
		if len(args) > 1 {
			if asc, err = toBool(args[1]); err != nil {
				return nil, err
			}
		}
		// 升序时空值在前，降序时空值在后
		return sortValues(l, asc, asc)
	})
	register("array_sort", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		return sortValues(l, true, false)
	})
	registerNullable("array_repeat", func(e *Engine, args []interface{}) (interface{}, error) {
		if args[1] == nil {
			return nil, nil
		}
		n, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		out := make([]interface{}, 0, max(n, 0))
		for i := int64(0); i < n; i++ {
			out = append(out, args[0])
		}
		return out, nil
	})
	register("sequence", func(e *Engine, args []interface{}) (interface{}, error) {
		start, err := toInt(args[0])
		if err != nil {
			return nil, err
		}
		stop, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		step := int64(1)
		if start > stop {
			step = -1
		}
		if len(args) > 2 {
			if step, err = toInt(args[2]); err != nil {
				return nil, err
			}
		}
		if start != stop && (step == 0 || (step > 0) != (stop > start)) {
			return nil, fmt.Errorf("illegal sequence boundaries: %d to %d by %d", start, stop, step)
		}
		out := []interface{}{start}
		for v := start + step; step != 0 && ((step > 0 && v <= stop) || (step < 0 && v >= stop)); v += step {
			out = append(out, v)
		}
		return out, nil
	})
	registerNullable("size", func(e *Engine, args []interface{}) (interface{}, error) {
		switch x := args[0].(type) {
		case nil:
			return int64(-1), nil
		case map[string]interface{}:
			return int64(len(x)), nil
		}
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		return int64(len(l)), nil
	})
	register("array_min", extremum(-1))
	register("array_max", extremum(1))
	register("flatten", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		out := []interface{}{}
		for _, v := range l {
			if v == nil {
				return nil, nil
			}
			inner, err := toList(v)
			if err != nil {
				return nil, err
			}
			out = append(out, inner...)
		}
		return out, nil
	})
	register("map_keys", mapParts(func(k string, v interface{}) interface{} { return k }))
	register("map_values", mapParts(func(k string, v interface{}) interface{} { return v }))
	register("map_entries", mapParts(func(k string, v interface{}) interface{} {
		return map[string]interface{}{"key": k, "value": v}
	}))
	register("map_from_entries", func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		pairs := make([]interface{}, 0, 2*len(l))
		for _, entry := range l {
			m, err := toMap(entry)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, m["key"], m["value"])
		}
		return builtins["create_map"].fn(e, pairs)
	})
}

func lists(a, b interface{}) ([]interface{}, []interface{}, error) {
	x, err := toList(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := toList(b)
	return x, y, err
}

func contains(l []interface{}, v interface{}) bool {
	for _, e := range l {
		if equal(e, v) || (e == nil && v == nil) {
			return true
		}
	}
	return false
}

func distinct(l []interface{}) []interface{} {
	out := []interface{}{}
	for _, v := range l {
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// setOp 保持首次出现的顺序并去重
func setOp(keep func(inA, inB bool) bool) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		a, b, err := lists(args[0], args[1])
		if err != nil {
			return nil, err
		}
		out := []interface{}{}
		for _, v := range append(append([]interface{}{}, a...), b...) {
			if contains(out, v) {
				continue
			}
			if keep(contains(a, v), contains(b, v)) {
				out = append(out, v)
			}
		}
		return out, nil
	}
}

func sortValues(l []interface{}, asc, nullsFirst bool) (interface{}, error) {
	var nulls, values []interface{}
	for _, v := range l {
		if v == nil {
			nulls = append(nulls, v)
		} else {
			values = append(values, v)
		}
	}
	var cmpErr error
	sort.SliceStable(values, func(i, j int) bool {
		c, err := compare(values[i], values[j])
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		if asc {
			return c < 0
		}
		return c > 0
	})
	if cmpErr != nil {
		return nil, cmpErr
	}
	out := make([]interface{}, 0, len(l))
	if nullsFirst {
		out = append(append(out, nulls...), values...)
	} else {
		out = append(append(out, values...), nulls...)
	}
	return out, nil
}

func extremum(sign int) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		l, err := toList(args[0])
		if err != nil {
			return nil, err
		}
		var best interface{}
		for _, v := range l {
			if v == nil {
				continue
			}
			if best == nil {
				best = v
				continue
			}
			c, err := compare(v, best)
			if err != nil {
				return nil, err
			}
			if c*sign > 0 {
				best = v
			}
		}
		return best, nil
	}
}

// mapParts 按键排序输出，保证结果确定
func mapParts(pick func(k string, v interface{}) interface{}) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		m, err := toMap(args[0])
		if err != nil {
			return nil, err
		}
		keys := sortedKeys(m)
		out := make([]interface{}, len(keys))
		for i, k := range keys {
			out[i] = pick(k, m[k])
		}
		return out, nil
	}
}
