// Package variant provides a closed two-case union. The stored value can only
// be observed through Match or Switch, which require a handler for both cases.
package variant

// Variant holds either a T1 or a T2. The zero value holds the zero T1.
type Variant[T1, T2 any] struct {
	second bool
	v1     T1
	v2     T2
}

func First[T1, T2 any](v T1) Variant[T1, T2] {
	return Variant[T1, T2]{v1: v}
}

func Second[T1, T2 any](v T2) Variant[T1, T2] {
	return Variant[T1, T2]{second: true, v2: v}
}

// Match calls exactly one of onFirst or onSecond with the stored value and
// returns its result.
func Match[T1, T2, R any](v Variant[T1, T2], onFirst func(T1) R, onSecond func(T2) R) R {
	if v.second {
		return onSecond(v.v2)
	}
	return onFirst(v.v1)
}

func Switch[T1, T2 any](v Variant[T1, T2], onFirst func(T1), onSecond func(T2)) {
	if v.second {
		onSecond(v.v2)
		return
	}
	onFirst(v.v1)
}
