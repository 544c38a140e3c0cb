//go:build !ios && !android && (amd64 || arm64)

package ffshim

import "math"

// Rational represents a rational number (fraction) as used by FFmpeg
// (AVRational). Time bases and frame rates travel as Rationals.
//
// Invalid rationals (zero denominator) are not validated anywhere in this
// package; their behavior matches FFmpeg's own (undefined per its
// documented contract).
type Rational struct {
	Num int32 // Numerator
	Den int32 // Denominator
}

// NewRational creates a new Rational with the given numerator and denominator.
func NewRational(num, den int32) Rational {
	return Rational{Num: num, Den: den}
}

// Bindings registered in registerCoreBindings.
//
// AVRational is an 8-byte composite, so it crosses the FFI boundary packed
// into a single integer register on every supported 64-bit ABI, for
// arguments and return values alike. This sidesteps purego's struct-by-
// value limitation without a helper library.
var (
	avMulQ func(a, b uint64) uint64
	avDivQ func(a, b uint64) uint64
	avAddQ func(a, b uint64) uint64
	avSubQ func(a, b uint64) uint64
	avD2Q  func(d float64, max int32) uint64
)

// packQ packs a Rational the way a little-endian register holds an
// AVRational: num in the low half, den in the high half.
func packQ(q Rational) uint64 {
	return uint64(uint32(q.Num)) | uint64(uint32(q.Den))<<32
}

func unpackQ(v uint64) Rational {
	return Rational{Num: int32(uint32(v)), Den: int32(uint32(v >> 32))}
}

// Mul multiplies two rationals (av_mul_q). Falls back to an exact Go port
// of the native reduction when FFmpeg is not loaded.
func (r Rational) Mul(other Rational) Rational {
	if avMulQ != nil {
		return unpackQ(avMulQ(packQ(r), packQ(other)))
	}
	num, den, _ := reduce(int64(r.Num)*int64(other.Num), int64(r.Den)*int64(other.Den), math.MaxInt32)
	return Rational{Num: num, Den: den}
}

// Div divides two rationals (av_div_q).
func (r Rational) Div(other Rational) Rational {
	if avDivQ != nil {
		return unpackQ(avDivQ(packQ(r), packQ(other)))
	}
	return r.Mul(other.Invert())
}

// Add adds two rationals (av_add_q).
func (r Rational) Add(other Rational) Rational {
	if avAddQ != nil {
		return unpackQ(avAddQ(packQ(r), packQ(other)))
	}
	num, den, _ := reduce(
		int64(r.Num)*int64(other.Den)+int64(other.Num)*int64(r.Den),
		int64(r.Den)*int64(other.Den),
		math.MaxInt32)
	return Rational{Num: num, Den: den}
}

// Sub subtracts two rationals (av_sub_q).
func (r Rational) Sub(other Rational) Rational {
	if avSubQ != nil {
		return unpackQ(avSubQ(packQ(r), packQ(other)))
	}
	return r.Add(Rational{Num: -other.Num, Den: other.Den})
}

// Cmp compares two rationals with av_cmp_q's three-way semantics:
// -1 if r < other, 0 if equal, 1 if r > other. av_cmp_q is a header
// inline rather than an exported symbol, so this is an exact Go port,
// including the unordered cases: comparing 0/0 against anything other
// than a nonzero/0 infinity yields math.MinInt32.
func (r Rational) Cmp(other Rational) int {
	tmp := int64(r.Num)*int64(other.Den) - int64(other.Num)*int64(r.Den)
	switch {
	case tmp != 0:
		if (tmp^int64(r.Den)^int64(other.Den))>>63 != 0 {
			return -1
		}
		return 1
	case other.Den != 0 && r.Den != 0:
		return 0
	case r.Num != 0 && other.Num != 0:
		return int(r.Num>>31) - int(other.Num>>31)
	default:
		return math.MinInt32
	}
}

// Float64 converts the rational to a float64, exactly as av_q2d does
// (another header inline): plain IEEE division, so a zero denominator
// yields an infinity or NaN rather than an error.
func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Invert returns the inverted rational (av_inv_q).
func (r Rational) Invert() Rational {
	return Rational{Num: r.Den, Den: r.Num}
}

// IsZero returns true if the rational is zero.
func (r Rational) IsZero() bool {
	return r.Num == 0
}

// D2Q converts a float64 to the best rational approximation with
// denominator bounded by max (av_d2q). Falls back to an exact Go port of
// av_d2q when FFmpeg is not loaded.
func D2Q(d float64, max int32) Rational {
	if avD2Q != nil {
		return unpackQ(avD2Q(d, max))
	}
	if math.IsNaN(d) {
		return Rational{0, 0}
	}
	if math.Abs(d) > float64(math.MaxInt32)+3 {
		if d < 0 {
			return Rational{-1, 0}
		}
		return Rational{1, 0}
	}
	_, exponent := math.Frexp(d)
	if exponent-1 > 0 {
		exponent--
	} else {
		exponent = 0
	}
	den := int64(1) << (61 - exponent)
	scaled := int64(math.Floor(d*float64(den) + 0.5))
	num, dn, _ := reduce(scaled, den, int64(max))
	// When the bounded reduction collapses, retry unbounded, as av_d2q does.
	if (num == 0 || dn == 0) && d != 0 && max > 0 && max < math.MaxInt32 {
		num, dn, _ = reduce(scaled, den, math.MaxInt32)
	}
	return Rational{Num: num, Den: dn}
}

// reduce is a Go port of av_reduce: reduce num/den to the best rational
// approximation with numerator and denominator bounded by max, via
// continued fractions. Reports whether the result is exact.
func reduce(num, den, max int64) (int32, int32, bool) {
	a0num, a0den := int64(0), int64(1)
	a1num, a1den := int64(1), int64(0)
	sign := (num < 0) != (den < 0)

	if num < 0 {
		num = -num
	}
	if den < 0 {
		den = -den
	}
	if g := gcd64(num, den); g != 0 {
		num /= g
		den /= g
	}
	if num <= max && den <= max {
		a1num, a1den = num, den
		den = 0
	}

	for den != 0 {
		x := num / den
		nextDen := num - den*x
		a2num := x*a1num + a0num
		a2den := x*a1den + a0den

		if a2num > max || a2den > max {
			if a1num != 0 {
				x = (max - a0num) / a1num
			}
			if a1den != 0 && (max-a0den)/a1den < x {
				x = (max - a0den) / a1den
			}
			if den*(2*x*a1den+a0den) > num*a1den {
				a1num, a1den = x*a1num+a0num, x*a1den+a0den
			}
			break
		}

		a0num, a0den = a1num, a1den
		a1num, a1den = a2num, a2den
		num = den
		den = nextDen
	}

	if sign {
		a1num = -a1num
	}
	return int32(a1num), int32(a1den), den == 0
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Common frame rates
var (
	FrameRate24    = NewRational(24, 1)
	FrameRate25    = NewRational(25, 1)
	FrameRate30    = NewRational(30, 1)
	FrameRate2997  = NewRational(30000, 1001) // 29.97 fps (NTSC)
	FrameRate50    = NewRational(50, 1)
	FrameRate60    = NewRational(60, 1)
	FrameRate5994  = NewRational(60000, 1001) // 59.94 fps
	FrameRate23976 = NewRational(24000, 1001) // 23.976 fps (film)
)

// TimeBase constants
var (
	TimeBaseMicro  = NewRational(1, 1000000) // Microsecond time base
	TimeBaseMilli  = NewRational(1, 1000)    // Millisecond time base
	TimeBaseSecond = NewRational(1, 1)       // Second time base
)
