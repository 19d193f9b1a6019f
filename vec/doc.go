/*
Package vec implements Vec, a contiguous, growable sequence with explicit
ownership of its single backing allocation.

# Quick Start

	v := vec.New[string]()
	v.Push("a")
	v.Push("b")
	last, ok := v.Pop() // "b", true

# Ownership Model

A Vec owns one block obtained from an alloc.Allocator. Slots [0, Len) hold
live elements; slots [Len, Cap) are spare and always hold the zero value.

  - Pop, Remove, Drain and IntoIter move elements out; ownership passes to
    the caller and the slot is zeroed.
  - Truncate, Clear, Free and an abandoned Drain or IntoIter drop elements:
    an element implementing Dropper has Drop called exactly once.
  - A *Vec element is itself a Dropper: dropping it frees its block, so
    nested Vecs are released with their owner.
  - IntoIter and IntoBoxed move the whole block out. The Vec is left moved
    and every later use panics with ErrMoved.

# Growth

Push doubles capacity when full (0, 1, 2, 4, 8, ...). Reserve doubles from
the current capacity until the request fits; ReserveExact and ShrinkTo
resize to an exact capacity.

# Bulk Population

Extend pulls from a Source and writes straight into spare capacity. The
size hint selects one of five strategies (nothing, exact, staged exact,
unbounded, exact then unbounded). Writes go through a guard whose cursor is
the only record of how many elements landed: if the source panics midway,
Len reflects exactly the elements written before the panic and the panic
continues unchanged.

BulkPopulateGuarded hands the same guarded cursor to caller code that
computes elements itself:

	v.BulkPopulateGuarded(vec.Exact(15), func(c *vec.Cursor[uint64]) {
	    a, b := uint64(0), uint64(1)
	    for c.Remaining() > 0 {
	        c.Write(a)
	        a, b = b, a+b
	    }
	})

# Draining

	d := v.Drain(1, 5)
	defer d.Close()
	for x := range d.All() {
	    ...
	}

The Vec is exclusively borrowed until the Drain is closed or exhausted;
any other call on it panics with ErrBorrowed. Closing drops what was not
yielded and compacts the tail.

# Borrowing Iterators

Iter, IterMut and the range functions All, Values and Pointers hold a
shared borrow while they can still read: until exhausted, until Close, or
until the loop ends. Reads stay allowed; anything that could reallocate,
move or drop elements panics with ErrBorrowed, so

	v.Extend(v.Iter())

faults instead of reading a block that growth has already released.
AsSlice, AsMutSlice and Block return plain slices and are not tracked.

# Thread Safety

A Vec is not safe for concurrent use. Borrow checks exist to catch
re-entrant misuse within one goroutine, not data races.
*/
package vec
