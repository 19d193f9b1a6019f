package alloc

import "reflect"

// hasPointers reports whether values of t contain anything the garbage
// collector traces. Strings, slices, maps, channels, funcs, interfaces and
// pointers all count.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// PointerFree reports whether T can be stored outside the Go heap.
func PointerFree[T any]() bool {
	return !hasPointers(reflect.TypeFor[T]())
}

func requirePointerFree[T any](backend string) {
	if !PointerFree[T]() {
		fault(ErrPointerElems, "%s cannot hold %s", backend, reflect.TypeFor[T]())
	}
}
