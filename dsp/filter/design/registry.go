package design

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// Key identifies a registered deriver.
type Key struct {
	Type iir.Type
	Pass iir.PassType
}

// String returns "type/pass", for example "Butterworth/LowPass".
func (k Key) String() string {
	return k.Type.String() + "/" + k.Pass.String()
}

type registration struct {
	key    Key
	orders []int
	derive deriver
}

// registrations is the complete deriver table. Orders are listed in
// ascending order.
var registrations = []registration{
	{Key{iir.Butterworth, iir.LowPass}, []int{1, 2, 3, 4}, lowPass(butterworth)},
	{Key{iir.Butterworth, iir.HighPass}, []int{1, 2, 3, 4}, highPass(butterworth)},
	{Key{iir.Butterworth, iir.BandPass}, []int{2, 4}, bandPass(butterworth)},
	{Key{iir.Butterworth, iir.BandStop}, []int{2, 4}, bandStop(butterworth)},

	{Key{iir.ChebyshevTypeI, iir.LowPass}, []int{1, 2, 3, 4}, lowPass(chebyshev1)},
	{Key{iir.ChebyshevTypeI, iir.HighPass}, []int{1, 2, 3, 4}, highPass(chebyshev1)},
	{Key{iir.ChebyshevTypeI, iir.BandPass}, []int{2, 4}, bandPass(chebyshev1)},
	{Key{iir.ChebyshevTypeI, iir.BandStop}, []int{2, 4}, bandStop(chebyshev1)},

	{Key{iir.ChebyshevTypeII, iir.LowPass}, []int{1, 2, 3, 4}, lowPass(chebyshev2)},
	{Key{iir.ChebyshevTypeII, iir.HighPass}, []int{1, 2, 3, 4}, highPass(chebyshev2)},
	{Key{iir.ChebyshevTypeII, iir.BandPass}, []int{2, 4}, bandPass(chebyshev2)},
	{Key{iir.ChebyshevTypeII, iir.BandStop}, []int{2, 4}, bandStop(chebyshev2)},

	{Key{iir.Bessel, iir.LowPass}, []int{1, 2, 3, 4}, lowPass(bessel)},
	{Key{iir.Bessel, iir.HighPass}, []int{1, 2, 3, 4}, highPass(bessel)},
	{Key{iir.Bessel, iir.BandPass}, []int{4}, bandPass(bessel)},
	{Key{iir.Bessel, iir.BandStop}, []int{4}, bandStop(bessel)},

	{Key{iir.LinkwitzRiley, iir.LowPass}, []int{2, 4}, lowPass(linkwitzRiley)},
	{Key{iir.LinkwitzRiley, iir.HighPass}, []int{2, 4}, highPass(linkwitzRiley)},
	{Key{iir.LinkwitzRiley, iir.BandPass}, []int{4}, bandPass(linkwitzRiley)},
	{Key{iir.LinkwitzRiley, iir.BandStop}, []int{4}, bandStop(linkwitzRiley)},

	{Key{iir.VariableQ, iir.LowPass}, []int{2}, lowPass(variableQ)},
	{Key{iir.VariableQ, iir.HighPass}, []int{2}, highPass(variableQ)},
	{Key{iir.VariableQ, iir.BandPass}, []int{4}, bandPass(variableQ)},
	{Key{iir.VariableQ, iir.BandStop}, []int{4}, bandStop(variableQ)},

	{Key{iir.AllPass, iir.None}, []int{1, 2}, allPass},
	{Key{iir.Equalization, iir.None}, []int{2}, equalization},
	{Key{iir.Notch, iir.None}, []int{2}, notch},

	{Key{iir.Shelf, iir.LowPass}, []int{1, 2}, lowShelf},
	{Key{iir.Shelf, iir.HighPass}, []int{1, 2}, highShelf},
}

// registry is built once at package initialization and only read
// afterwards, so lookups need no locking.
var registry = func() map[Key]registration {
	m := make(map[Key]registration, len(registrations))
	for _, r := range registrations {
		if _, dup := m[r.key]; dup {
			panic("design: duplicate registration " + r.key.String())
		}

		m[r.key] = r
	}

	return m
}()

// Design derives a filter of type t and pass type pass from p.
//
// When p carries no order and the combination supports exactly one order,
// that order is used. Errors wrap [ErrNotRegistered], [ErrMissingOrder],
// [ErrUnsupportedOrder], the per-family parameter errors, or the
// validation errors of [iir.Parameters.Validate].
func Design(t iir.Type, p iir.Parameters, pass iir.PassType) (*iir.Filter, error) {
	key := Key{Type: t, Pass: pass}

	r, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	order, ok := p.Order()
	if !ok {
		if len(r.orders) != 1 {
			return nil, fmt.Errorf("%w: %s accepts %v", ErrMissingOrder, key, r.orders)
		}

		order = r.orders[0]
	}

	if !slices.Contains(r.orders, order) {
		return nil, fmt.Errorf("%w: %s order %d, want one of %v", ErrUnsupportedOrder, key, order, r.orders)
	}

	f, err := r.derive(p, order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return f, nil
}

// CreateFilter is like [Design] but returns nil instead of an error. An
// unregistered combination and an invalid parameter set are both reported
// as "no filter".
func CreateFilter(t iir.Type, p iir.Parameters, pass iir.PassType) *iir.Filter {
	f, err := Design(t, p, pass)
	if err != nil {
		return nil
	}

	return f
}

// PassTypes returns the pass types registered for t, sorted by name.
func PassTypes(t iir.Type) []iir.PassType {
	var out []iir.PassType

	for _, r := range registrations {
		if r.key.Type == t {
			out = append(out, r.key.Pass)
		}
	}

	slices.SortFunc(out, func(a, b iir.PassType) int {
		return cmp.Compare(a.String(), b.String())
	})

	return out
}

// Orders returns the valid orders for (t, pass), or nil when the
// combination is not registered. The returned slice is a copy.
func Orders(t iir.Type, pass iir.PassType) []int {
	r, ok := registry[Key{Type: t, Pass: pass}]
	if !ok {
		return nil
	}

	return slices.Clone(r.orders)
}

// Keys returns every registered (type, pass type) pair in table order.
func Keys() []Key {
	out := make([]Key, len(registrations))
	for i, r := range registrations {
		out[i] = r.key
	}

	return out
}
