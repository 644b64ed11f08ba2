package monad

// Monad is the contract shared by every variant. M is the variant itself
// instantiated at T, so Bind stays inside one variant:
//
//	identity.Identity[int] implements Monad[int, identity.Identity[int]]
//
// Changing the payload type (T -> M<U>) is done by the package-level Bind of
// each variant, since methods cannot declare their own type parameters.
//
// Together with the variant's Of, Bind must satisfy:
//
//   - left identity:  Of(x).Bind(f) == f(x)
//   - right identity: m.Bind(Of) == m
//   - associativity:  m.Bind(f).Bind(g) == m.Bind(func(x T) M { return f(x).Bind(g) })
type Monad[T, M any] interface {
	// Bind applies f to the contained value, or short-circuits without calling f
	Bind(f func(T) M) M
}

// ValueProvider gives access to the contained value
type ValueProvider[T any] interface {
	// Get returns the value and true in the productive state
	Get() (T, bool)
}

// ShortCircuiter reports the state of a variant's chain
type ShortCircuiter interface {
	// IsShortCircuit returns true once the chain stopped calling functions
	IsShortCircuit() bool
}

// Variant is what identity, optional and result values all provide
type Variant[T, M any] interface {
	Monad[T, M]
	ValueProvider[T]
	ShortCircuiter
}
