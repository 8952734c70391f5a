package bigfloat

// The Must* wrappers generalize the teacher's MustAdd/MustSub/MustMul/
// MustQuo convention (panic instead of returning an error) across this
// package's full operation set, for callers who have already established
// by construction that an operation cannot fail — setting up package-level
// constants, for instance.

// MustQuo is like Number.Quo but panics on error.
func MustQuo(x, y Number) Number {
	v, err := x.Quo(y)
	if err != nil {
		panic(err)
	}
	return v
}

// MustQuoPrecision is like Number.QuoPrecision but panics on error.
func MustQuoPrecision(x, y Number, prec int64) Number {
	v, err := x.QuoPrecision(y, prec)
	if err != nil {
		panic(err)
	}
	return v
}

// MustParse is like Parse but panics on error.
func MustParse(s string, prec int64, radix int) Number {
	v, err := Parse(s, prec, radix)
	if err != nil {
		panic(err)
	}
	return v
}

// MustRoot is like Root but panics on error.
func MustRoot(x Number, n int64) Number {
	v, err := Root(x, n)
	if err != nil {
		panic(err)
	}
	return v
}

// MustSqrt is like Sqrt but panics on error.
func MustSqrt(x Number) Number {
	v, err := Sqrt(x)
	if err != nil {
		panic(err)
	}
	return v
}

// MustPow is like Pow but panics on error.
func MustPow(x Number, n int64) Number {
	v, err := Pow(x, n)
	if err != nil {
		panic(err)
	}
	return v
}

// MustPowNumber is like PowNumber but panics on error.
func MustPowNumber(x, y Number, prec int64) Number {
	v, err := PowNumber(x, y, prec)
	if err != nil {
		panic(err)
	}
	return v
}

// MustLog is like Log but panics on error.
func MustLog(x Number, prec int64) Number {
	v, err := Log(x, prec)
	if err != nil {
		panic(err)
	}
	return v
}

// MustExp is like Exp but panics on error.
func MustExp(x Number, prec int64) Number {
	v, err := Exp(x, prec)
	if err != nil {
		panic(err)
	}
	return v
}

// MustPi is like Pi but panics on error.
func MustPi(prec int64) Number {
	v, err := Pi(prec)
	if err != nil {
		panic(err)
	}
	return v
}

// MustPiRadix is like PiRadix but panics on error.
func MustPiRadix(radix int, prec int64) Number {
	v, err := PiRadix(radix, prec)
	if err != nil {
		panic(err)
	}
	return v
}

// MustAgm is like Agm but panics on error.
func MustAgm(a, b Number, prec int64) Number {
	v, err := Agm(a, b, prec)
	if err != nil {
		panic(err)
	}
	return v
}

// MustFmod is like Fmod but panics on error.
func MustFmod(x, y Number) Number {
	v, err := Fmod(x, y)
	if err != nil {
		panic(err)
	}
	return v
}
