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

package local

import (
	"fmt"
	"strings"
	"sync"
)

// 日期时间模式（yyyy-MM-dd HH:mm:ss 风格）与Go布局的对应
var patternLetters = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"y":    "2006",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"EEEE": "Monday",
	"EEE":  "Mon",
	"E":    "Mon",
	"HH":   "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"a":    "PM",
	"XXX":  "Z07:00",
	"XX":   "Z0700",
	"X":    "Z07",
	"ZZZ":  "-0700",
	"Z":    "-0700",
	"z":    "MST",
}

var layouts sync.Map

// javaLayout 把日期时间模式转换为Go的时间布局，结果会被缓存
func javaLayout(pattern string) (string, error) {
	if l, ok := layouts.Load(pattern); ok {
		return l.(string), nil
	}
	layout, err := convertPattern(pattern)
	if err != nil {
		return "", err
	}
	layouts.Store(pattern, layout)
	return layout, nil
}

func convertPattern(pattern string) (string, error) {
	var b strings.Builder
	r := []rune(pattern)
	for i := 0; i < len(r); {
		c := r[i]
		switch {
		case c == '\'':
			// 单引号内为原样文本，两个单引号表示一个单引号
			j := i + 1
			if j < len(r) && r[j] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			for j < len(r) && r[j] != '\'' {
				b.WriteRune(r[j])
				j++
			}
			if j == len(r) {
				return "", fmt.Errorf("unterminated quote in pattern %q", pattern)
			}
			i = j + 1
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			j := i
			for j < len(r) && r[j] == c {
				j++
			}
			run := string(r[i:j])
			if c == 'S' {
				// 秒的小数部分，Go要求以小数点开头
				if !strings.HasSuffix(b.String(), ".") && !strings.HasSuffix(b.String(), ",") {
					b.WriteByte('.')
				}
				b.WriteString(strings.Repeat("0", len(run)))
			} else {
				layout, err := letterLayout(run)
				if err != nil {
					return "", fmt.Errorf("%w in pattern %q", err, pattern)
				}
				b.WriteString(layout)
			}
			i = j
		default:
			b.WriteRune(c)
			i++
		}
	}
	return b.String(), nil
}

func letterLayout(run string) (string, error) {
	if l, ok := patternLetters[run]; ok {
		return l, nil
	}
	// 过长的重复按最长的已知形式处理，如yyyyy
	for n := len(run) - 1; n > 0; n-- {
		if l, ok := patternLetters[run[:n]]; ok && len(run) > 4 {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported pattern letter %q", run)
}
