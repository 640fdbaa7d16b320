package timex

import (
	"math/bits"
	"time"
)

const nanosPerSecond = int64(time.Second)

// Align returns the latest s <= t with s ≡ offset (mod size), counted in
// nanoseconds from the Unix epoch. Times before 1970 align downwards too.
// The whole time.Time range is supported, not only the UnixNano range.
func Align(t time.Time, size, offset time.Duration) time.Time {
	if size <= 0 {
		return t
	}
	return t.Add(-time.Duration(sinceAligned(t, int64(size), int64(offset))))
}

// AlignUp returns the earliest s >= t with s ≡ offset (mod size)
func AlignUp(t time.Time, size, offset time.Duration) time.Time {
	s := Align(t, size, offset)
	if s.Equal(t) || size <= 0 {
		return s
	}
	return s.Add(size)
}

// FloorMod returns a mod b with the sign of b; Go's % follows the sign of a
func FloorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// sinceAligned 计算 (t - offset) mod size，单位纳秒，结果在 [0, size)。
// t = sec*1e9 + nsec，分段取模避免 UnixNano 溢出。
func sinceAligned(t time.Time, size, offset int64) int64 {
	sec := uint64(FloorMod(t.Unix(), size))
	hi, lo := bits.Mul64(sec, uint64(nanosPerSecond))
	rem := int64(bits.Rem64(hi, lo, uint64(size)))
	rem = addMod(rem, FloorMod(int64(t.Nanosecond()), size), size)
	return FloorMod(rem-FloorMod(offset, size), size)
}

// addMod returns (a + b) mod m for a, b in [0, m) without overflow
func addMod(a, b, m int64) int64 {
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}
