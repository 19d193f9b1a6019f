package vec

import "reflect"

// Dropper is implemented by elements that release resources when a Vec
// destroys them. Drop is called exactly once for every element that is
// truncated, cleared, freed or left un-yielded by a Drain or IntoIter.
// Elements moved out (Pop, Remove, iteration) are never dropped by the Vec.
type Dropper interface {
	Drop()
}

// Cloner is implemented by elements that need a deep copy when their Vec is
// cloned. Other elements are copied by value.
type Cloner[T any] interface {
	Clone() T
}

// dropOne drops the element at p and zeroes the slot.
func dropOne[T any](p *T) {
	var zero T
	defer func() { *p = zero }()
	if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
}

var dropperType = reflect.TypeFor[Dropper]()

// mayDrop reports whether elements of type T can implement Dropper.
func mayDrop[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Kind() == reflect.Interface ||
		t.Implements(dropperType) ||
		reflect.PointerTo(t).Implements(dropperType)
}

// dropSlice drops every element of s in index order. If a Drop panics the
// remaining elements are still dropped before the panic continues.
func dropSlice[T any](s []T) {
	if !mayDrop[T]() {
		clear(s)
		return
	}
	i := 0
	defer func() {
		if i < len(s) {
			dropSlice(s[i+1:])
		}
	}()
	for ; i < len(s); i++ {
		dropOne(&s[i])
	}
}

func cloneOne[T any](x T) T {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x
}
