package functions

import (
	"fmt"

	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/window"
)

// 时间日期函数
func datetimeFunctions() []*Descriptor {
	out := []*Descriptor{
		scalar(TypeDateTime, "current_date", 0, 0, "Current date at the start of query evaluation"),
		scalar(TypeDateTime, "current_timestamp", 0, 0, "Current timestamp at the start of query evaluation"),
		scalar(TypeDateTime, "date_format", 2, 2, "Format a date/timestamp with a datetime pattern", pCol, pLit),
		scalar(TypeDateTime, "date_add", 2, 2, "Date days after start", pCol, pLit),
		scalar(TypeDateTime, "date_sub", 2, 2, "Date days before start", pCol, pLit),
		scalar(TypeDateTime, "datediff", 2, 2, "Number of days from start to end", pCol, pCol),
		scalar(TypeDateTime, "add_months", 2, 2, "Date months after start", pCol, pLit),
		scalar(TypeDateTime, "months_between", 2, 3, "Months between date1 and date2, rounded to 8 digits unless roundOff is false", pCol, pCol, pLit),
		scalar(TypeDateTime, "to_date", 1, 2, "Parse a string into a date", pCol, pLit),
		scalar(TypeDateTime, "to_timestamp", 1, 2, "Parse a string into a timestamp", pCol, pLit),
		scalar(TypeDateTime, "trunc", 2, 2, "Date truncated to the unit given by format", pCol, pLit),
		scalar(TypeDateTime, "date_trunc", 2, 2, "Timestamp truncated to the unit given by format", pLit, pCol),
		scalar(TypeDateTime, "next_day", 2, 2, "First date later than date on the given day of week", pCol, pLit),
		scalar(TypeDateTime, "from_unixtime", 1, 2, "Format seconds since the epoch", pCol, pLit),
		scalar(TypeDateTime, "unix_timestamp", 0, 2, "Seconds since the epoch of a time string, or of now", pCol, pLit),
		scalar(TypeDateTime, "from_utc_timestamp", 2, 2, "Render a UTC timestamp in the given time zone", pCol, pLit),
		scalar(TypeDateTime, "to_utc_timestamp", 2, 2, "Interpret a timestamp in the given time zone and convert to UTC", pCol, pLit),
	}
	for _, name := range []string{"year", "quarter", "month", "dayofweek", "dayofmonth", "dayofyear",
		"hour", "minute", "second", "weekofyear", "last_day"} {
		out = append(out, unary(TypeDateTime, name, "Extract "+name+" of a date/timestamp"))
	}

	w := scalar(TypeDateTime, "window", 2, 4,
		"Bucketize rows into tumbling or sliding time windows given a timestamp column", pCol, pLit, pLit, pLit)
	w.Validate = validateWindow
	return append(out, w)
}

// validateWindow 构造期解析窗口时长，日历单位在此时报错
func validateWindow(d *Descriptor, args []expr.Node) error {
	for i := 1; i < len(args); i++ {
		lit, ok := args[i].(*expr.Literal)
		if ok && (lit.Scalar().Kind() == types.KindString || (i > 1 && lit.Scalar().IsNull())) {
			continue
		}
		return &types.InvalidArgumentError{Function: d.Name, Position: i,
			Message: fmt.Sprintf("duration must be a string literal, got %s", args[i])}
	}
	_, err := SpecOf(args)
	return err
}

// SpecOf parses the duration arguments of a window call: (time, length[, slide[, start]])
func SpecOf(args []expr.Node) (window.Spec, error) {
	durations := make([]string, 3)
	for i := 1; i < len(args) && i <= 3; i++ {
		if lit, ok := args[i].(*expr.Literal); ok && lit.Scalar().Kind() == types.KindString {
			durations[i-1] = lit.Scalar().Value().(string)
		}
	}
	return window.NewSpec(durations[0], durations[1], durations[2])
}
