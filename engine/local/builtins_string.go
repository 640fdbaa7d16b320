package local

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// 字符集名称，与JVM的标准字符集一致
var charsets = map[string]encoding.Encoding{
	"ISO-8859-1": charmap.ISO8859_1,
	"UTF-8":      unicode.UTF8,
	"UTF-16BE":   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"UTF-16LE":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"UTF-16":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

// 正则表达式编译缓存
var patterns sync.Map

func compilePattern(p string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(p); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, err
	}
	patterns.Store(p, re)
	return re, nil
}

// 字符串函数
func init() {
	register("upper", stringFn(strings.ToUpper))
	register("lower", stringFn(strings.ToLower))
	register("ltrim", stringFn(func(s string) string { return strings.TrimLeft(s, " ") }))
	register("rtrim", stringFn(func(s string) string { return strings.TrimRight(s, " ") }))
	register("trim", stringFn(func(s string) string { return strings.Trim(s, " ") }))
	register("initcap", stringFn(func(s string) string {
		return cases.Title(language.Und).String(s)
	}))
	register("soundex", stringFn(soundex))

	register("ascii", func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		if s == "" {
			return int64(0), nil
		}
		r, _ := utf8.DecodeRuneInString(s)
		return int64(r), nil
	})
	register("length", func(e *Engine, args []interface{}) (interface{}, error) {
		if b, ok := args[0].([]byte); ok {
			return int64(len(b)), nil
		}
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		return int64(utf8.RuneCountInString(s)), nil
	})
	register("base64", func(e *Engine, args []interface{}) (interface{}, error) {
		b, err := toBytes(args[0])
		if err != nil {
			return nil, err
		}
		return base64.StdEncoding.EncodeToString(b), nil
	})
	register("unbase64", func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, nil
		}
		return b, nil
	})

	registerNullable("concat_ws", func(e *Engine, args []interface{}) (interface{}, error) {
		if args[0] == nil {
			return nil, nil
		}
		sep, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		var parts []string
		for _, a := range args[1:] {
			items := []interface{}{a}
			if l, ok := a.([]interface{}); ok {
				items = l
			}
			for _, item := range items {
				if item == nil {
					continue
				}
				s, err := toText(item)
				if err != nil {
					return nil, err
				}
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep), nil
	})
	registerNullable("format_string", func(e *Engine, args []interface{}) (interface{}, error) {
		if args[0] == nil {
			return nil, nil
		}
		format, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf(format, args[1:]...), nil
	})
	register("format_number", func(e *Engine, args []interface{}) (interface{}, error) {
		x, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		d, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		if d < 0 {
			return nil, nil
		}
		return message.NewPrinter(language.English).Sprintf("%.*f", int(d), x), nil
	})
	register("encode", func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		enc, err := charset(args[1])
		if err != nil {
			return nil, err
		}
		return enc.NewEncoder().Bytes([]byte(s))
	})
	register("decode", func(e *Engine, args []interface{}) (interface{}, error) {
		b, err := toBytes(args[0])
		if err != nil {
			return nil, err
		}
		enc, err := charset(args[1])
		if err != nil {
			return nil, err
		}
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil {
			return nil, err
		}
		return string(out), nil
	})

	register("instr", func(e *Engine, args []interface{}) (interface{}, error) {
		s, sub, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return int64(runeIndex(s, sub, 0) + 1), nil
	})
	register("locate", func(e *Engine, args []interface{}) (interface{}, error) {
		sub, s, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		pos := int64(1)
		if len(args) > 2 {
			if pos, err = toInt(args[2]); err != nil {
				return nil, err
			}
		}
		if pos < 1 {
			return int64(0), nil
		}
		return int64(runeIndex(s, sub, int(pos-1)) + 1), nil
	})
	register("overlay", func(e *Engine, args []interface{}) (interface{}, error) {
		src, repl, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		pos, err := toInt(args[2])
		if err != nil {
			return nil, err
		}
		rs, rr := []rune(src), []rune(repl)
		n := int64(len(rr))
		if len(args) > 3 {
			if n, err = toInt(args[3]); err != nil {
				return nil, err
			}
			if n < 0 {
				n = int64(len(rr))
			}
		}
		start := clamp(pos-1, 0, int64(len(rs)))
		end := clamp(start+n, start, int64(len(rs)))
		return string(rs[:start]) + repl + string(rs[end:]), nil
	})
	register("substring", func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		pos, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		n, err := toInt(args[2])
		if err != nil {
			return nil, err
		}
		return substring(s, pos, n), nil
	})
	register("substring_index", func(e *Engine, args []interface{}) (interface{}, error) {
		s, delim, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		count, err := toInt(args[2])
		if err != nil {
			return nil, err
		}
		return substringIndex(s, delim, count), nil
	})
	register("levenshtein", func(e *Engine, args []interface{}) (interface{}, error) {
		a, b, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return int64(levenshtein([]rune(a), []rune(b))), nil
	})
	register("lpad", pad(true))
	register("rpad", pad(false))
	register("repeat", func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		n, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return "", nil
		}
		return strings.Repeat(s, int(n)), nil
	})
	register("split", func(e *Engine, args []interface{}) (interface{}, error) {
		s, p, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		limit := int64(-1)
		if len(args) > 2 {
			if limit, err = toInt(args[2]); err != nil {
				return nil, err
			}
		}
		if limit <= 0 {
			limit = -1
		}
		re, err := compilePattern(p)
		if err != nil {
			return nil, err
		}
		parts := re.Split(s, int(limit))
		out := make([]interface{}, len(parts))
		for i, part := range parts {
			out[i] = part
		}
		return out, nil
	})
	register("regexp_extract", func(e *Engine, args []interface{}) (interface{}, error) {
		s, p, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		idx, err := toInt(args[2])
		if err != nil {
			return nil, err
		}
		re, err := compilePattern(p)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx > int64(re.NumSubexp()) {
			return nil, fmt.Errorf("regex group count is %d, but the specified group index is %d", re.NumSubexp(), idx)
		}
		m := re.FindStringSubmatch(s)
		if m == nil {
			return "", nil
		}
		return m[idx], nil
	})
	register("regexp_replace", func(e *Engine, args []interface{}) (interface{}, error) {
		s, p, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		repl, err := toText(args[2])
		if err != nil {
			return nil, err
		}
		re, err := compilePattern(p)
		if err != nil {
			return nil, err
		}
		return re.ReplaceAllString(s, repl), nil
	})
	register("translate", func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		from, to, err := texts(args[1], args[2])
		if err != nil {
			return nil, err
		}
		return translate(s, []rune(from), []rune(to)), nil
	})
	register("reverse", func(e *Engine, args []interface{}) (interface{}, error) {
		if l, ok := args[0].([]interface{}); ok {
			out := make([]interface{}, len(l))
			for i, v := range l {
				out[len(l)-1-i] = v
			}
			return out, nil
		}
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		r := []rune(s)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r), nil
	})
}

func stringFn(fn func(string) string) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		return fn(s), nil
	}
}

func texts(a, b interface{}) (string, string, error) {
	x, err := toText(a)
	if err != nil {
		return "", "", err
	}
	y, err := toText(b)
	return x, y, err
}

func charset(v interface{}) (encoding.Encoding, error) {
	name, err := toText(v)
	if err != nil {
		return nil, err
	}
	enc, ok := charsets[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return enc, nil
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runeIndex 从第from个字符开始查找，返回字符下标，未找到为-1
func runeIndex(s, sub string, from int) int {
	r := []rune(s)
	if from > len(r) {
		return -1
	}
	i := strings.Index(string(r[from:]), sub)
	if i < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(string(r[from:])[:i])
}

// substring pos从1开始，0按1处理，负数从末尾计
func substring(s string, pos, n int64) string {
	r := []rune(s)
	size := int64(len(r))
	var start int64
	switch {
	case pos > 0:
		start = pos - 1
	case pos < 0:
		start = size + pos
	}
	end := start + n
	if n < 0 || end < start {
		return ""
	}
	start = clamp(start, 0, size)
	end = clamp(end, 0, size)
	if start >= end {
		return ""
	}
	return string(r[start:end])
}

// substringIndex count为正时取第count个分隔符之前的部分，为负时取倒数第count个之后的部分
func substringIndex(s, delim string, count int64) string {
	if count == 0 || delim == "" {
		return ""
	}
	parts := strings.Split(s, delim)
	if count > 0 {
		if count >= int64(len(parts)) {
			return s
		}
		return strings.Join(parts[:count], delim)
	}
	if -count >= int64(len(parts)) {
		return s
	}
	return strings.Join(parts[int64(len(parts))+count:], delim)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func pad(left bool) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		s, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		n, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		p, err := toText(args[2])
		if err != nil {
			return nil, err
		}
		r := []rune(s)
		if n <= 0 {
			return "", nil
		}
		if int64(len(r)) >= n {
			return string(r[:n]), nil
		}
		fill := []rune(p)
		if len(fill) == 0 {
			return s, nil
		}
		need := int(n) - len(r)
		padding := make([]rune, need)
		for i := range padding {
			padding[i] = fill[i%len(fill)]
		}
		if left {
			return string(padding) + s, nil
		}
		return s + string(padding), nil
	}
}

func translate(s string, from, to []rune) string {
	mapping := make(map[rune]rune, len(from))
	for i, c := range from {
		if _, seen := mapping[c]; seen {
			continue
		}
		if i < len(to) {
			mapping[c] = to[i]
		} else {
			mapping[c] = -1
		}
	}
	var b strings.Builder
	for _, c := range s {
		m, ok := mapping[c]
		switch {
		case !ok:
			b.WriteRune(c)
		case m >= 0:
			b.WriteRune(m)
		}
	}
	return b.String()
}

// soundex 美式SoundEx编码，首字符非字母时原样返回
func soundex(s string) string {
	const codes = "01230120022455012623010202"
	if s == "" {
		return s
	}
	first := s[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	if first < 'A' || first > 'Z' {
		return s
	}
	out := []byte{first}
	last := codes[first-'A']
	for i := 1; i < len(s) && len(out) < 4; i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		code := codes[c-'A']
		// H和W不分隔相同编码
		if c == 'H' || c == 'W' {
			continue
		}
		if code != '0' && code != last {
			out = append(out, code)
		}
		last = code
	}
	for len(out) < 4 {
		out = append(out, '0')
	}
	return string(out)
}
