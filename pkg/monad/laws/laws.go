package laws

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/monad3/pkg/monad"
)

type Checker[T, M any] struct {
	Of   func(T) M
	Bind func(m M, f func(T) M) M
	// Equal defaults to structural equality
	Equal func(a, b M) bool
}

// ForMethod builds a Checker whose Bind is the Bind method of M
func ForMethod[T any, M monad.Monad[T, M]](of func(T) M) Checker[T, M] {
	return Checker[T, M]{
		Of: of,
		Bind: func(m M, f func(T) M) M {
			return m.Bind(f)
		},
	}
}

func (c Checker[T, M]) equal(a, b M) bool {
	if c.Equal != nil {
		return c.Equal(a, b)
	}
	return assert.ObjectsAreEqual(a, b)
}

// LeftIdentity checks Bind(Of(x), f) == f(x)
func (c Checker[T, M]) LeftIdentity(x T, f func(T) M) bool {
	return c.equal(c.Bind(c.Of(x), f), f(x))
}

// RightIdentity checks Bind(m, Of) == m
func (c Checker[T, M]) RightIdentity(m M) bool {
	return c.equal(c.Bind(m, c.Of), m)
}

// Associativity checks Bind(Bind(m, f), g) == Bind(m, x => Bind(f(x), g))
func (c Checker[T, M]) Associativity(m M, f, g func(T) M) bool {
	left := c.Bind(c.Bind(m, f), g)
	right := c.Bind(m, func(x T) M {
		return c.Bind(f(x), g)
	})
	return c.equal(left, right)
}

// Verify checks left identity for every sample and function, right identity
// for every monad, and associativity for every monad and ordered pair of
// functions. It returns false if any law failed.
func Verify[T, M any](t assert.TestingT, c Checker[T, M], samples []T, monads []M, fs ...func(T) M) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	passed := true
	for _, x := range samples {
		for i, f := range fs {
			passed = assert.Truef(t, c.LeftIdentity(x, f),
				"left identity violated for %v with function #%d", x, i) && passed
		}
	}

	for _, m := range monads {
		passed = assert.Truef(t, c.RightIdentity(m), "right identity violated for %v", m) && passed

		for i, f := range fs {
			for j, g := range fs {
				passed = assert.Truef(t, c.Associativity(m, f, g),
					"associativity violated for %v with functions #%d, #%d", m, i, j) && passed
			}
		}
	}

	return passed
}

// Strings returns n distinct random strings
func Strings(n int) []string {
	samples := make([]string, 0, n)
	for range n {
		samples = append(samples, uuid.NewString())
	}
	return samples
}
