package enumerable

import "reflect"

// Equal reports whether a == b. Unlike the bare operator it never panics:
// when either value holds a dynamic type that cannot be compared, such as a
// slice stored in an any, the values are reported as unequal.
func Equal[T comparable](a, b T) bool {
	if mayPanicOnCompare(reflect.TypeFor[T]()) &&
		(!comparableValue(&a) || !comparableValue(&b)) {
		return false
	}
	return a == b
}

// equalTo returns Equal bound to item, with the type inspection done once.
func equalTo[T comparable](item T) func(T) bool {
	if !mayPanicOnCompare(reflect.TypeFor[T]()) {
		return func(v T) bool { return v == item }
	}
	if !comparableValue(&item) {
		return func(T) bool { return false }
	}
	return func(v T) bool { return comparableValue(&v) && v == item }
}

func comparableValue[T any](p *T) bool {
	return reflect.ValueOf(p).Elem().Comparable()
}

// mayPanicOnCompare reports whether == on values of t can panic at run
// time, which only happens when an interface is reachable inside t.
func mayPanicOnCompare(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayPanicOnCompare(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if mayPanicOnCompare(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
