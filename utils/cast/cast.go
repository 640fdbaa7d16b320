/*
 * Copyright 2024 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cast 在 spf13/cast 之上提供本模块统一的类型转换规则
package cast

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// ToFloat64E 显式浮点转换，用于二元数学函数的字面量参数。
// 与spf13/cast不同，nil不会被当作0。
func ToFloat64E(x interface{}) (float64, error) {
	switch v := x.(type) {
	case nil:
		return 0, fmt.Errorf("unable to cast nil to float64")
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case time.Time, time.Duration:
		return 0, fmt.Errorf("unable to cast %T to float64", x)
	}
	return cast.ToFloat64E(x)
}

// ToFloat64 转换失败时返回0
func ToFloat64(x interface{}) float64 {
	f, _ := ToFloat64E(x)
	return f
}

// ToInt64E 转换为int64，浮点数按截断处理
func ToInt64E(x interface{}) (int64, error) {
	switch v := x.(type) {
	case nil:
		return 0, fmt.Errorf("unable to cast nil to int64")
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("unable to cast %v to int64", v)
		}
		return int64(v), nil
	case float32:
		return int64(v), nil
	case string:
		// spf13/cast 会把"08"之类的前导零字符串按八进制解析
		return cast.ToInt64E(trimLeadingZeros(v))
	}
	return cast.ToInt64E(x)
}

// ToIntE 转换为int
func ToIntE(x interface{}) (int, error) {
	i, err := ToInt64E(x)
	return int(i), err
}

// ToStringE 规范字符串形式：布尔为"true"/"false"，时间为RFC3339
func ToStringE(x interface{}) (string, error) {
	switch v := x.(type) {
	case nil:
		return "", fmt.Errorf("unable to cast nil to string")
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case *time.Time:
		if v == nil {
			return "", fmt.Errorf("unable to cast nil to string")
		}
		return v.Format(time.RFC3339Nano), nil
	case time.Duration:
		return v.String(), nil
	}
	return cast.ToStringE(x)
}

// ToString 转换失败时使用%v格式
func ToString(x interface{}) string {
	s, err := ToStringE(x)
	if err != nil {
		return fmt.Sprintf("%v", x)
	}
	return s
}

// ToBoolE 转换为bool
func ToBoolE(x interface{}) (bool, error) {
	if x == nil {
		return false, fmt.Errorf("unable to cast nil to bool")
	}
	return cast.ToBoolE(x)
}

// ToTimeE 转换为time.Time，数值按Unix秒处理
func ToTimeE(x interface{}) (time.Time, error) {
	return ToTimeInLocationE(x, time.UTC)
}

// ToTimeInLocationE 不带时区的时间字符串按loc解析
func ToTimeInLocationE(x interface{}, loc *time.Location) (time.Time, error) {
	switch v := x.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("unable to cast nil to time.Time")
	case time.Time:
		return v, nil
	case float64:
		sec, frac := math.Modf(v)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))).In(loc), nil
	}
	return cast.ToTimeInDefaultLocationE(x, loc)
}

// ToSliceE 转换为[]interface{}，任意切片或数组类型都可以，[]byte除外
func ToSliceE(x interface{}) ([]interface{}, error) {
	if x == nil {
		return nil, fmt.Errorf("unable to cast nil to []interface{}")
	}
	if s, err := cast.ToSliceE(x); err == nil {
		return s, nil
	}
	if _, ok := x.([]byte); ok {
		return nil, fmt.Errorf("unable to cast []byte to []interface{}")
	}
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("unable to cast %T to []interface{}", x)
	}
	out := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.Index(i).Interface()
	}
	return out, nil
}

// IsCollection 是否为切片/数组（[]byte视为二进制标量，不算集合）
func IsCollection(x interface{}) bool {
	if x == nil {
		return false
	}
	if _, ok := x.([]byte); ok {
		return false
	}
	k := reflect.ValueOf(x).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func trimLeadingZeros(s string) string {
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			if neg {
				return "-" + s
			}
			return s
		}
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	s = s[i:]
	if neg {
		return "-" + s
	}
	return s
}
