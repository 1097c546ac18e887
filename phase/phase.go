package phase

import (
	"fmt"
	"strconv"
)

// Phase is a rational multiple of π, stored as a reduced fraction num/den
// with den > 0 and num ∈ (−den, den]. The zero value is the zero phase.
type Phase struct {
	num int64
	den int64
}

// New builds a Phase of num/den · π, normalized modulo 2π.
// A zero denominator panics: it is a programmer error, not an input error.
func New(num, den int64) Phase {
	if den == 0 {
		panic("phase: zero denominator")
	}

	return normalize(num, den)
}

// Zero returns the zero phase.
func Zero() Phase { return Phase{num: 0, den: 1} }

// Pi returns the phase π.
func Pi() Phase { return Phase{num: 1, den: 1} }

// PiHalf returns the phase π/2.
func PiHalf() Phase { return Phase{num: 1, den: 2} }

// normalize reduces num/den to lowest terms, forces den > 0, and wraps the
// numerator into (−den, den] (reduction modulo 2π).
func normalize(num, den int64) Phase {
	// Force a positive denominator first so the modular step is well-defined.
	if den < 0 {
		num, den = -num, -den
	}
	// Reduce to lowest terms.
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	// Wrap into (−den, den]: the angle num/den·π taken modulo 2π.
	twoDen := 2 * den
	num %= twoDen
	if num > den {
		num -= twoDen
	} else if num <= -den {
		num += twoDen
	}

	return Phase{num: num, den: den}
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Numerator returns the reduced numerator in (−Denominator, Denominator].
func (p Phase) Numerator() int64 {
	if p.den == 0 {
		return 0 // zero value
	}

	return p.num
}

// Denominator returns the reduced, positive denominator.
func (p Phase) Denominator() int64 {
	if p.den == 0 {
		return 1 // zero value normalizes lazily
	}

	return p.den
}

// Add returns p + q, normalized.
func (p Phase) Add(q Phase) Phase {
	return normalize(p.Numerator()*q.Denominator()+q.Numerator()*p.Denominator(),
		p.Denominator()*q.Denominator())
}

// Sub returns p − q, normalized.
func (p Phase) Sub(q Phase) Phase {
	return normalize(p.Numerator()*q.Denominator()-q.Numerator()*p.Denominator(),
		p.Denominator()*q.Denominator())
}

// Neg returns −p, normalized (so Neg of π is π, since −π ≡ π mod 2π).
func (p Phase) Neg() Phase {
	return normalize(-p.Numerator(), p.Denominator())
}

// Mul returns k·p, normalized.
func (p Phase) Mul(k int64) Phase {
	return normalize(k*p.Numerator(), p.Denominator())
}

// Equal reports whether p and q represent the same angle.
// Normalization makes this a field-wise comparison.
func (p Phase) Equal(q Phase) bool {
	return p.Numerator() == q.Numerator() && p.Denominator() == q.Denominator()
}

// IsZero reports whether p is the zero phase.
func (p Phase) IsZero() bool { return p.Numerator() == 0 }

// IsNPi reports whether p is an integer multiple of π (denominator 1).
func (p Phase) IsNPi() bool { return p.Denominator() == 1 }

// IsClifford reports whether p is a multiple of π/2 (denominator ≤ 2).
func (p Phase) IsClifford() bool { return p.Denominator() <= 2 }

// IsT reports whether p is an odd multiple of π/4 (denominator exactly 4).
func (p Phase) IsT() bool { return p.Denominator() == 4 }

// String renders the phase in the conventional aπ/b form, e.g. "0", "π",
// "-π/2", "3π/4".
func (p Phase) String() string {
	num, den := p.Numerator(), p.Denominator()
	if num == 0 {
		return "0"
	}

	var s string
	switch num {
	case 1:
		s = "π"
	case -1:
		s = "-π"
	default:
		s = strconv.FormatInt(num, 10) + "π"
	}
	if den != 1 {
		s = fmt.Sprintf("%s/%d", s, den)
	}

	return s
}
