package variant

// Match2 dispatches on the discriminant of v: exactly one handler is invoked
// exactly once, with the payload of the selected case. Both handlers are
// required parameters, so coverage of every case is checked at compile time.
//
// A zero value (no constructor ran) carries no first payload and dispatches
// to onSecond.
func Match2[A, B, R any](v Of2[A, B], onFirst func(A) R, onSecond func(B) R) R {
	if v.tag == TagFirst {
		return onFirst(v.first)
	}
	return onSecond(v.second)
}

// Match3 is Match2 for three-case variants.
func Match3[A, B, C, R any](v Of3[A, B, C], onFirst func(A) R, onSecond func(B) R, onThird func(C) R) R {
	switch v.tag {
	case TagFirst:
		return onFirst(v.first)
	case TagThird:
		return onThird(v.third)
	default:
		return onSecond(v.second)
	}
}
