package bigfloat

// Agm returns the arithmetic-geometric mean of a and b, iterated to
// workingPrecision digits.
//
// Convergence happens in two phases. Early on ("linear" convergence) a and
// b are still far apart and each iteration only narrows the gap by a
// roughly constant number of digits; checking EqualDigits against a fixed
// small threshold each round avoids computing a full digit-doubling
// schedule before it's worth it. Once they agree to within that
// threshold, convergence turns quadratic — each further iteration roughly
// doubles the number of digits a and b agree on — so the loop can simply
// run until that agreement reaches the full working precision.
func Agm(a, b Number, workingPrecision int64) (Number, error) {
	radix := a.radix
	if a.coef.Sign() == 0 || b.coef.Sign() == 0 {
		return Zero(radix).WithPrecision(workingPrecision), nil
	}

	an := a.WithPrecision(workingPrecision)
	bn := b.WithPrecision(workingPrecision)
	two := NewInt(2, radix)

	const converging = 1000
	linearTarget := minInt64(converging, workingPrecision)

	for an.EqualDigits(bn) < linearTarget {
		step, err := agmStep(an, bn, two, workingPrecision)
		if err != nil {
			return Number{}, err
		}
		if step.an.Equal(an) && step.bn.Equal(bn) {
			break
		}
		an, bn = step.an, step.bn
	}

	for an.EqualDigits(bn) < workingPrecision {
		step, err := agmStep(an, bn, two, workingPrecision)
		if err != nil {
			return Number{}, err
		}
		if step.an.Equal(an) && step.bn.Equal(bn) {
			break
		}
		an, bn = step.an, step.bn
	}

	return an.WithPrecision(workingPrecision), nil
}

type agmPair struct{ an, bn Number }

func agmStep(an, bn, two Number, workingPrecision int64) (agmPair, error) {
	sum, err := an.Add(bn).QuoPrecision(two, workingPrecision)
	if err != nil {
		return agmPair{}, err
	}
	geo, err := Sqrt(an.Mul(bn).WithPrecision(workingPrecision))
	if err != nil {
		return agmPair{}, err
	}
	return agmPair{an: sum, bn: geo}, nil
}
