/*
 * Copyright 2025 The RuleGo Authors.
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

package types

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind 字面量的基本类型，集合是封闭的
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindBinary
	KindDate
	KindTimestamp
)

// String returns the lower-case kind name used in error messages and CLI output
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Date 不带时间部分的日历日期
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate 从time.Time截取日期部分
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}

// Scalar 带类型的标量值 (TypedScalar)。
// 每个Scalar都有确定的Kind，值只能通过构造函数设置。
type Scalar struct {
	kind  Kind
	value interface{}
}

func NullScalar() Scalar { return Scalar{kind: KindNull} }

func BoolScalar(v bool) Scalar { return Scalar{kind: KindBoolean, value: v} }

func IntScalar(v int64) Scalar { return Scalar{kind: KindInteger, value: v} }

func FloatScalar(v float64) Scalar { return Scalar{kind: KindFloat, value: v} }

func StringScalar(v string) Scalar { return Scalar{kind: KindString, value: v} }

// BinaryScalar copies v so later writes by the caller cannot reach the literal
func BinaryScalar(v []byte) Scalar {
	cp := make([]byte, len(v))
	copy(cp, v)
	return Scalar{kind: KindBinary, value: cp}
}

func DateScalar(v Date) Scalar { return Scalar{kind: KindDate, value: v} }

func TimestampScalar(v time.Time) Scalar { return Scalar{kind: KindTimestamp, value: v} }

// Kind 返回标量类型
func (s Scalar) Kind() Kind {
	return s.kind
}

// IsNull 是否为null
func (s Scalar) IsNull() bool {
	return s.kind == KindNull
}

// Value 返回Go原生值：bool, int64, float64, string, []byte, Date, time.Time 或 nil
func (s Scalar) Value() interface{} {
	if b, ok := s.value.([]byte); ok {
		cp := make([]byte, len(b))
		copy(cp, b)
		return cp
	}
	return s.value
}

// Equal 结构相等比较
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindNull:
		return true
	case KindBinary:
		return bytes.Equal(s.value.([]byte), o.value.([]byte))
	case KindTimestamp:
		return s.value.(time.Time).Equal(o.value.(time.Time))
	default:
		return s.value == o.value
	}
}

// SQL renders the scalar as a SQL literal
func (s Scalar) SQL() string {
	switch s.kind {
	case KindNull:
		return "NULL"
	case KindBoolean:
		return strings.ToUpper(strconv.FormatBool(s.value.(bool)))
	case KindInteger:
		return strconv.FormatInt(s.value.(int64), 10)
	case KindFloat:
		f := s.value.(float64)
		str := strconv.FormatFloat(f, 'g', -1, 64)
		// keep floats visibly floating point: 2 -> 2.0
		if !strings.ContainsAny(str, ".eEnN") {
			str += ".0"
		}
		return str
	case KindString:
		return "'" + strings.ReplaceAll(s.value.(string), "'", "''") + "'"
	case KindBinary:
		return fmt.Sprintf("X'%X'", s.value.([]byte))
	case KindDate:
		return "DATE '" + s.value.(Date).String() + "'"
	case KindTimestamp:
		return "TIMESTAMP '" + s.value.(time.Time).UTC().Format("2006-01-02 15:04:05.999999999") + "'"
	default:
		return "?"
	}
}

// Text renders the scalar value as plain text, without SQL quoting
func (s Scalar) Text() string {
	switch s.kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(s.value.(bool))
	case KindString:
		return s.value.(string)
	case KindBinary:
		return base64.StdEncoding.EncodeToString(s.value.([]byte))
	case KindDate:
		return s.value.(Date).String()
	case KindTimestamp:
		return s.value.(time.Time).UTC().Format(time.RFC3339Nano)
	default:
		return s.SQL()
	}
}

func (s Scalar) String() string {
	return s.SQL()
}
