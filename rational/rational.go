// Package rational implements exact fractions over arbitrary-precision integers.
//
// A Rational is an immutable value: every operation returns a new, fully
// reduced value and never modifies its operands. The denominator is always
// positive and the sign lives in the numerator. Zero is represented as 0/1.
package rational

import (
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrDivisionByZero is returned when a zero denominator is requested or
	// a value is divided by zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrInvalidFormat is returned when a literal is neither "<int>" nor "<int>/<int>".
	ErrInvalidFormat = errors.New("rational: invalid format")
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

var (
	// Zero is the canonical 0/1.
	Zero = Rational{num: bigZero, den: bigOne}
	// One is 1/1.
	One = Rational{num: bigOne, den: bigOne}
)

// Rational is an exact fraction num/den. The zero value is 0/1.
//
// The big.Int pointers are never mutated once a Rational has been built, so
// values may be copied and shared freely.
type Rational struct {
	num *big.Int
	den *big.Int
}

// New returns num/den reduced to lowest terms. It fails with
// ErrDivisionByZero when den is zero. The arguments are not retained.
func New(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return normalize(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{num: big.NewInt(n), den: bigOne}
}

// FromFrac returns num/den reduced to lowest terms.
func FromFrac(num, den int64) (Rational, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromFloat64 returns the exact binary value of f. NaN and infinities are
// rejected with ErrInvalidFormat.
func FromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, errors.Wrapf(ErrInvalidFormat, "non-finite value %v", f)
	}
	r := new(big.Rat).SetFloat64(f)
	return normalize(new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom())), nil
}

// Parse reads "<int>" or "<int>/<int>", with optional surrounding whitespace
// around the literal and around each part of a fraction.
func Parse(s string) (Rational, error) {
	text := strings.TrimSpace(s)
	if !strings.Contains(text, "/") {
		num, ok := parseInt(text)
		if !ok {
			return Rational{}, errors.Wrapf(ErrInvalidFormat, "%q", s)
		}
		return Rational{num: num, den: bigOne}, nil
	}

	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return Rational{}, errors.Wrapf(ErrInvalidFormat, "%q", s)
	}
	num, ok := parseInt(strings.TrimSpace(parts[0]))
	if !ok {
		return Rational{}, errors.Wrapf(ErrInvalidFormat, "%q", s)
	}
	den, ok := parseInt(strings.TrimSpace(parts[1]))
	if !ok {
		return Rational{}, errors.Wrapf(ErrInvalidFormat, "%q", s)
	}
	if den.Sign() == 0 {
		return Rational{}, errors.Wrapf(ErrDivisionByZero, "%q", s)
	}
	return normalize(num, den), nil
}

// MustParse is like Parse but panics if the literal cannot be parsed.
// It simplifies initialization of constants and test fixtures.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseInt(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// normalize takes ownership of num and den.
func normalize(num, den *big.Int) Rational {
	if num.Sign() == 0 {
		return Zero
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if gcd.Cmp(bigOne) != 0 {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	return Rational{num: num, den: den}
}

func (r Rational) n() *big.Int {
	if r.num == nil {
		return bigZero
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return bigOne
	}
	return r.den
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.n()) }

// Den returns a copy of the denominator. It is always positive.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.d()) }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	num := new(big.Int).Mul(r.n(), o.d())
	num.Add(num, new(big.Int).Mul(o.n(), r.d()))
	return normalize(num, new(big.Int).Mul(r.d(), o.d()))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	num := new(big.Int).Mul(r.n(), o.d())
	num.Sub(num, new(big.Int).Mul(o.n(), r.d()))
	return normalize(num, new(big.Int).Mul(r.d(), o.d()))
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return normalize(new(big.Int).Mul(r.n(), o.n()), new(big.Int).Mul(r.d(), o.d()))
}

// Div returns r / o, or ErrDivisionByZero when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	return normalize(new(big.Int).Mul(r.n(), o.d()), new(big.Int).Mul(r.d(), o.n())), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.IsZero() {
		return Zero
	}
	return Rational{num: new(big.Int).Neg(r.n()), den: r.d()}
}

// Cmp compares r and o by cross-multiplication and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	left := new(big.Int).Mul(r.n(), o.d())
	return left.Cmp(new(big.Int).Mul(o.n(), r.d()))
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int { return r.n().Sign() }

// IsZero reports whether r is 0.
func (r Rational) IsZero() bool { return r.n().Sign() == 0 }

// Equal reports whether r and o denote the same value.
func (r Rational) Equal(o Rational) bool {
	return r.n().Cmp(o.n()) == 0 && r.d().Cmp(o.d()) == 0
}

// Less reports whether r < o.
func (r Rational) Less(o Rational) bool { return r.Cmp(o) < 0 }

// Min returns the smaller of a and b, a on ties.
func Min(a, b Rational) Rational {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// Max returns the larger of a and b, a on ties.
func Max(a, b Rational) Rational {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Trunc returns the integer part of r, truncated toward zero.
func (r Rational) Trunc() *big.Int {
	return new(big.Int).Quo(r.n(), r.d())
}

// Floor returns the largest integer not greater than r.
func (r Rational) Floor() *big.Int {
	// Euclidean division rounds down for a positive divisor.
	return new(big.Int).Div(r.n(), r.d())
}

// Float64 returns the nearest float64. The conversion is lossy and is meant
// for display and generation only.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.n(), r.d()).Float64()
	return f
}

// String returns "num" for integers and "num/den" otherwise.
func (r Rational) String() string {
	if r.d().Cmp(bigOne) == 0 {
		return r.n().String()
	}
	return r.n().String() + "/" + r.d().String()
}

// Key returns a comparable representation usable as a map key. Equal values
// have equal keys.
func (r Rational) Key() string { return r.String() }
