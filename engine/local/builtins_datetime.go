package local

import (
	"math"
	"strings"
	"time"

	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/window"
)

const defaultTimestampPattern = "yyyy-MM-dd HH:mm:ss"

// 时间日期函数，时区为引擎配置的会话时区
func init() {
	register("current_date", func(e *Engine, args []interface{}) (interface{}, error) {
		return types.NewDate(e.now().In(e.loc)), nil
	})
	register("current_timestamp", func(e *Engine, args []interface{}) (interface{}, error) {
		return e.now().In(e.loc), nil
	})
	register("date_format", func(e *Engine, args []interface{}) (interface{}, error) {
		t, err := toTime(args[0], e.loc)
		if err != nil {
			return nil, err
		}
		return e.format(t, args[1])
	})
	register("date_add", dateShift(1))
	register("date_sub", dateShift(-1))
	register("datediff", func(e *Engine, args []interface{}) (interface{}, error) {
		end, err := toDate(args[0], e.loc)
		if err != nil {
			return nil, err
		}
		start, err := toDate(args[1], e.loc)
		if err != nil {
			return nil, err
		}
		return daysBetween(start, end), nil
	})
	register("add_months", func(e *Engine, args []interface{}) (interface{}, error) {
		d, err := toDate(args[0], e.loc)
		if err != nil {
			return nil, err
		}
		n, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		return addMonths(d, int(n)), nil
	})
	register("months_between", func(e *Engine, args []interface{}) (interface{}, error) {
		t1, err := toTime(args[0], e.loc)
		if err != nil {
			return nil, err
		}
		t2, err := toTime(args[1], e.loc)
		if err != nil {
			return nil, err
		}
		roundOff := true
		if len(args) > 2 {
			if roundOff, err = toBool(args[2]); err != nil {
				return nil, err
			}
		}
		return monthsBetween(t1.In(e.loc), t2.In(e.loc), roundOff), nil
	})
	register("to_date", func(e *Engine, args []interface{}) (interface{}, error) {
		if len(args) == 1 {
			d, err := toDate(args[0], e.loc)
			if err != nil {
				return nil, nil
			}
			return d, nil
		}
		t, err := e.parse(args[0], args[1])
		if err != nil || t == nil {
			return nil, err
		}
		return types.NewDate(*t), nil
	})
	register("to_timestamp", func(e *Engine, args []interface{}) (interface{}, error) {
		if len(args) == 1 {
			t, err := toTime(args[0], e.loc)
			if err != nil {
				return nil, nil
			}
			return t, nil
		}
		t, err := e.parse(args[0], args[1])
		if err != nil || t == nil {
			return nil, err
		}
		return *t, nil
	})
	register("trunc", func(e *Engine, args []interface{}) (interface{}, error) {
		d, err := toDate(args[0], e.loc)
		if err != nil {
			return nil, err
		}
		unit, err := toText(args[1])
		if err != nil {
			return nil, err
		}
		t, ok := truncate(d.Time(), unit, false)
		if !ok {
			return nil, nil
		}
		return types.NewDate(t), nil
	})
	register("date_trunc", func(e *Engine, args []interface{}) (interface{}, error) {
		unit, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		t, err := toTime(args[1], e.loc)
		if err != nil {
			return nil, err
		}
		out, ok := truncate(t.In(e.loc), unit, true)
		if !ok {
			return nil, nil
		}
		return out, nil
	})
	register("next_day", func(e *Engine, args []interface{}) (interface{}, error) {
		d, err := toDate(args[0], e.loc)
		if err != nil {
			return nil, err
		}
		name, err := toText(args[1])
		if err != nil {
			return nil, err
		}
		wd, ok := weekday(name)
		if !ok {
			return nil, nil
		}
		t := d.Time()
		delta := (int(wd) - int(t.Weekday()) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		return types.NewDate(t.AddDate(0, 0, delta)), nil
	})
	register("from_unixtime", func(e *Engine, args []interface{}) (interface{}, error) {
		sec, err := toInt(args[0])
		if err != nil {
			return nil, err
		}
		var pattern interface{} = defaultTimestampPattern
		if len(args) > 1 {
			pattern = args[1]
		}
		return e.format(time.Unix(sec, 0), pattern)
	})
	registerNullable("unix_timestamp", func(e *Engine, args []interface{}) (interface{}, error) {
		if len(args) == 0 {
			return e.now().Unix(), nil
		}
		if args[0] == nil {
			return nil, nil
		}
		if _, ok := args[0].(string); !ok {
			t, err := toTime(args[0], e.loc)
			if err != nil {
				return nil, err
			}
			return t.Unix(), nil
		}
		var pattern interface{} = defaultTimestampPattern
		if len(args) > 1 && args[1] != nil {
			pattern = args[1]
		}
		t, err := e.parse(args[0], pattern)
		if err != nil || t == nil {
			return nil, err
		}
		return t.Unix(), nil
	})
	register("from_utc_timestamp", func(e *Engine, args []interface{}) (interface{}, error) {
		t, tz, err := e.timeAndZone(args[0], args[1])
		if err != nil {
			return nil, err
		}
		w := t.In(tz)
		return wallClock(w, e.loc), nil
	})
	register("to_utc_timestamp", func(e *Engine, args []interface{}) (interface{}, error) {
		t, tz, err := e.timeAndZone(args[0], args[1])
		if err != nil {
			return nil, err
		}
		u := wallClock(t.In(e.loc), tz).UTC()
		return wallClock(u, e.loc), nil
	})

	for name, fn := range map[string]func(t time.Time) interface{}{
		"year":       func(t time.Time) interface{} { return int64(t.Year()) },
		"quarter":    func(t time.Time) interface{} { return int64((t.Month()-1)/3 + 1) },
		"month":      func(t time.Time) interface{} { return int64(t.Month()) },
		"dayofweek":  func(t time.Time) interface{} { return int64(t.Weekday()) + 1 },
		"dayofmonth": func(t time.Time) interface{} { return int64(t.Day()) },
		"dayofyear":  func(t time.Time) interface{} { return int64(t.YearDay()) },
		"hour":       func(t time.Time) interface{} { return int64(t.Hour()) },
		"minute":     func(t time.Time) interface{} { return int64(t.Minute()) },
		"second":     func(t time.Time) interface{} { return int64(t.Second()) },
		"weekofyear": func(t time.Time) interface{} {
			_, w := t.ISOWeek()
			return int64(w)
		},
		"last_day": func(t time.Time) interface{} {
			first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
			return types.NewDate(first.AddDate(0, 1, -1))
		},
	} {
		register(name, func(e *Engine, args []interface{}) (interface{}, error) {
			t, err := toTime(args[0], e.loc)
			if err != nil {
				return nil, err
			}
			return fn(t.In(e.loc)), nil
		})
	}

	registerNullable("window", func(e *Engine, args []interface{}) (interface{}, error) {
		if args[0] == nil {
			return nil, nil
		}
		t, err := toTime(args[0], e.loc)
		if err != nil {
			return nil, err
		}
		assigner, err := e.assigner(args[1:])
		if err != nil {
			return nil, err
		}
		slots := assigner.Assign(t)
		if assigner.Spec().IsTumbling() {
			return slots[0].ToStruct(), nil
		}
		out := make([]interface{}, len(slots))
		for i, slot := range slots {
			out[i] = slot.ToStruct()
		}
		return out, nil
	})
}

func (e *Engine) format(t time.Time, pattern interface{}) (interface{}, error) {
	p, err := toText(pattern)
	if err != nil {
		return nil, err
	}
	layout, err := javaLayout(p)
	if err != nil {
		return nil, err
	}
	return t.In(e.loc).Format(layout), nil
}

// parse 按模式解析，无法解析时返回nil
func (e *Engine) parse(value, pattern interface{}) (*time.Time, error) {
	if t, ok := value.(time.Time); ok {
		return &t, nil
	}
	s, err := toText(value)
	if err != nil {
		return nil, err
	}
	p, err := toText(pattern)
	if err != nil {
		return nil, err
	}
	layout, err := javaLayout(p)
	if err != nil {
		return nil, err
	}
	t, err := time.ParseInLocation(layout, s, e.loc)
	if err != nil {
		return nil, nil
	}
	return &t, nil
}

func (e *Engine) timeAndZone(v, zone interface{}) (time.Time, *time.Location, error) {
	t, err := toTime(v, e.loc)
	if err != nil {
		return time.Time{}, nil, err
	}
	name, err := toText(zone)
	if err != nil {
		return time.Time{}, nil, err
	}
	tz, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, nil, err
	}
	return t, tz, nil
}

// assigner 窗口规格按参数文本缓存
func (e *Engine) assigner(durations []interface{}) (window.Assigner, error) {
	texts := make([]string, 3)
	for i := 0; i < len(durations) && i < 3; i++ {
		if durations[i] == nil {
			continue
		}
		s, err := toText(durations[i])
		if err != nil {
			return nil, err
		}
		texts[i] = s
	}
	key := strings.Join(texts, "|")
	if a, ok := e.windows.Load(key); ok {
		return a.(window.Assigner), nil
	}
	spec, err := window.NewSpec(texts[0], texts[1], texts[2])
	if err != nil {
		return nil, err
	}
	a, err := window.CreateWindow(spec)
	if err != nil {
		return nil, err
	}
	e.windows.Store(key, a)
	return a, nil
}

func wallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func dateShift(sign int) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		d, err := toDate(args[0], e.loc)
		if err != nil {
			return nil, err
		}
		n, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		return types.NewDate(d.Time().AddDate(0, 0, sign*int(n))), nil
	}
}

func daysBetween(start, end types.Date) int64 {
	return int64(end.Time().Sub(start.Time()).Hours() / 24)
}

// addMonths 结果超过目标月最后一天时取最后一天
func addMonths(d types.Date, n int) types.Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day
	if day > last {
		day = last
	}
	return types.Date{Year: first.Year(), Month: first.Month(), Day: day}
}

func isLastDay(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}

// monthsBetween 同日或均为月末时为整数，否则按每月31天计算小数部分
func monthsBetween(t1, t2 time.Time, roundOff bool) float64 {
	months := float64((t1.Year()-t2.Year())*12 + int(t1.Month()) - int(t2.Month()))
	if t1.Day() == t2.Day() || (isLastDay(t1) && isLastDay(t2)) {
		return months
	}
	secs := func(t time.Time) float64 {
		return float64(t.Day()*86400+t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
	}
	out := months + (secs(t1)-secs(t2))/(31*86400)
	if roundOff {
		return math.Round(out*1e8) / 1e8
	}
	return out
}

// truncate 截断到单位起点，withTime为false时只接受日期单位
func truncate(t time.Time, unit string, withTime bool) (time.Time, bool) {
	loc := t.Location()
	switch strings.ToLower(unit) {
	case "year", "yyyy", "yy":
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, loc), true
	case "quarter":
		m := (t.Month()-1)/3*3 + 1
		return time.Date(t.Year(), m, 1, 0, 0, 0, 0, loc), true
	case "month", "mon", "mm":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc), true
	case "week":
		back := (int(t.Weekday()) + 6) % 7
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		return d.AddDate(0, 0, -back), true
	}
	if !withTime {
		return time.Time{}, false
	}
	switch strings.ToLower(unit) {
	case "day", "dd":
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
	case "hour":
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc), true
	case "minute":
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
	case "second":
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), true
	case "millisecond":
		return t.Truncate(time.Millisecond), true
	case "microsecond":
		return t.Truncate(time.Microsecond), true
	}
	return time.Time{}, false
}

var weekdays = map[string]time.Weekday{
	"su": time.Sunday, "sun": time.Sunday, "sunday": time.Sunday,
	"mo": time.Monday, "mon": time.Monday, "monday": time.Monday,
	"tu": time.Tuesday, "tue": time.Tuesday, "tuesday": time.Tuesday,
	"we": time.Wednesday, "wed": time.Wednesday, "wednesday": time.Wednesday,
	"th": time.Thursday, "thu": time.Thursday, "thursday": time.Thursday,
	"fr": time.Friday, "fri": time.Friday, "friday": time.Friday,
	"sa": time.Saturday, "sat": time.Saturday, "saturday": time.Saturday,
}

func weekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}
