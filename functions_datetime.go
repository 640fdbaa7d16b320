package colexpr

import "github.com/rulego/colexpr/expr"

// 时间日期函数

// CurrentDate is the date at the start of evaluation.
func CurrentDate() (*expr.Call, error) {
	return std.Call("current_date")
}

// CurrentTimestamp is the timestamp at the start of evaluation.
func CurrentTimestamp() (*expr.Call, error) {
	return std.Call("current_timestamp")
}

// DateFormat formats a date or timestamp with a datetime pattern such as "yyyy-MM-dd".
func DateFormat(col, format interface{}) (*expr.Call, error) {
	return std.Call("date_format", col, format)
}

// DateAdd returns the date days after start.
func DateAdd(start, days interface{}) (*expr.Call, error) {
	return std.Call("date_add", start, days)
}

// DateSub returns the date days before start.
func DateSub(start, days interface{}) (*expr.Call, error) {
	return std.Call("date_sub", start, days)
}

// DateDiff counts the days from start to end.
func DateDiff(end, start interface{}) (*expr.Call, error) {
	return std.Call("datediff", end, start)
}

// AddMonths returns the date months after start.
func AddMonths(start, months interface{}) (*expr.Call, error) {
	return std.Call("add_months", start, months)
}

// MonthsBetween 两个日期相差的月数，默认保留8位小数
func MonthsBetween(date1, date2 interface{}, roundOff ...interface{}) (*expr.Call, error) {
	return std.Call("months_between", withRest([]interface{}{date1, date2}, roundOff)...)
}

// ToDate parses col into a date, with an optional datetime pattern.
func ToDate(col interface{}, format ...interface{}) (*expr.Call, error) {
	return std.Call("to_date", withRest([]interface{}{col}, format)...)
}

// ToTimestamp parses col into a timestamp, with an optional datetime pattern.
func ToTimestamp(col interface{}, format ...interface{}) (*expr.Call, error) {
	return std.Call("to_timestamp", withRest([]interface{}{col}, format)...)
}

// Trunc truncates a date to the unit named by format, e.g. "month".
func Trunc(date, format interface{}) (*expr.Call, error) {
	return std.Call("trunc", date, format)
}

// DateTrunc truncates a timestamp to the unit named by format. Note the argument order.
func DateTrunc(format, timestamp interface{}) (*expr.Call, error) {
	return std.Call("date_trunc", format, timestamp)
}

// NextDay is the first date after date that falls on dayOfWeek, e.g. "Mon".
func NextDay(date, dayOfWeek interface{}) (*expr.Call, error) {
	return std.Call("next_day", date, dayOfWeek)
}

// FromUnixtime formats seconds since the epoch, "yyyy-MM-dd HH:mm:ss" by default.
func FromUnixtime(timestamp interface{}, format ...interface{}) (*expr.Call, error) {
	return std.Call("from_unixtime", withRest([]interface{}{timestamp}, format)...)
}

// UnixTimestamp is the seconds since the epoch of a time string, or of now
// without arguments.
func UnixTimestamp(timestampAndFormat ...interface{}) (*expr.Call, error) {
	return std.Call("unix_timestamp", timestampAndFormat...)
}

// FromUTCTimestamp renders a UTC timestamp in zone tz.
func FromUTCTimestamp(timestamp, tz interface{}) (*expr.Call, error) {
	return std.Call("from_utc_timestamp", timestamp, tz)
}

// ToUTCTimestamp reads a timestamp in zone tz and converts it to UTC.
func ToUTCTimestamp(timestamp, tz interface{}) (*expr.Call, error) {
	return std.Call("to_utc_timestamp", timestamp, tz)
}

// Year 提取年份
func Year(col interface{}) (*expr.Call, error) {
	return std.Call("year", col)
}

// Quarter 提取季度
func Quarter(col interface{}) (*expr.Call, error) {
	return std.Call("quarter", col)
}

// Month 提取月份
func Month(col interface{}) (*expr.Call, error) {
	return std.Call("month", col)
}

// DayOfWeek extracts the day of week, 1 = Sunday.
func DayOfWeek(col interface{}) (*expr.Call, error) {
	return std.Call("dayofweek", col)
}

// DayOfMonth 提取日
func DayOfMonth(col interface{}) (*expr.Call, error) {
	return std.Call("dayofmonth", col)
}

// DayOfYear 提取一年中的第几天
func DayOfYear(col interface{}) (*expr.Call, error) {
	return std.Call("dayofyear", col)
}

// Hour 提取小时
func Hour(col interface{}) (*expr.Call, error) {
	return std.Call("hour", col)
}

// Minute 提取分钟
func Minute(col interface{}) (*expr.Call, error) {
	return std.Call("minute", col)
}

// Second 提取秒
func Second(col interface{}) (*expr.Call, error) {
	return std.Call("second", col)
}

// WeekOfYear extracts the ISO week number.
func WeekOfYear(col interface{}) (*expr.Call, error) {
	return std.Call("weekofyear", col)
}

// LastDay is the last day of the month of the date.
func LastDay(col interface{}) (*expr.Call, error) {
	return std.Call("last_day", col)
}

// Window bucketizes rows into time windows.
//
// windowDuration, and the optional slideDuration and startTime that follow it,
// are interval strings like "10 minutes". Without a slide the windows tumble;
// pass nil as slide to give only a start time:
//
//	colexpr.Window("ts", "10 minutes", nil, "2 minutes")
//
// Calendar units (month, year) fail with *types.UnsupportedWindowUnitError.
func Window(timeColumn, windowDuration interface{}, slideAndStart ...interface{}) (*expr.Call, error) {
	return std.Call("window", withRest([]interface{}{timeColumn, windowDuration}, slideAndStart)...)
}
