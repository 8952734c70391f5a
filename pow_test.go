package bigfloat

import "testing"

func TestPowNumber_IntegerExponent(t *testing.T) {
	x := MustParse("2", 30, 10)
	y := MustParse("10", 30, 10)

	got, err := PowNumber(x, y, 30)
	if err != nil {
		t.Fatalf("PowNumber(2,10) failed: %v", err)
	}
	want := NewInt(1024, 10).WithPrecision(30)
	if got.EqualDigits(want) < 25 {
		t.Errorf("PowNumber(2,10) = %v, want %v", got, want)
	}
}

func TestPowNumber_FractionalExponent(t *testing.T) {
	x := MustParse("4", 30, 10)
	y := MustParse("0.5", 30, 10)

	got, err := PowNumber(x, y, 30)
	if err != nil {
		t.Fatalf("PowNumber(4,0.5) failed: %v", err)
	}
	want := MustParse("2", 30, 10)
	if got.EqualDigits(want) < 20 {
		t.Errorf("PowNumber(4,0.5) = %v, want ~2", got)
	}
}

func TestPowNumber_NegativeBaseIntegerExponent(t *testing.T) {
	x := MustParse("-2", 30, 10)
	y := MustParse("3", 30, 10)

	got, err := PowNumber(x, y, 30)
	if err != nil {
		t.Fatalf("PowNumber(-2,3) failed: %v", err)
	}
	want := MustParse("-8", 30, 10)
	if got.EqualDigits(want) < 20 {
		t.Errorf("PowNumber(-2,3) = %v, want -8", got)
	}
}

func TestPowNumber_NegativeBaseFractionalExponentError(t *testing.T) {
	x := MustParse("-2", 30, 10)
	y := MustParse("0.5", 30, 10)
	if _, err := PowNumber(x, y, 30); err == nil {
		t.Errorf("PowNumber(-2,0.5) succeeded, want error")
	}
}

func TestPowNumber_ZeroBaseZeroExponentError(t *testing.T) {
	if _, err := PowNumber(Zero(10), Zero(10), 30); err == nil {
		t.Errorf("PowNumber(0,0) succeeded, want error")
	}
}

func TestPowNumber_NearOne(t *testing.T) {
	x := MustParse("1.0000001", 30, 10)
	y := MustParse("1000000", 30, 10)

	got, err := PowNumber(x, y, 30)
	if err != nil {
		t.Fatalf("PowNumber near 1 failed: %v", err)
	}
	if got.Sign() <= 0 {
		t.Errorf("PowNumber(1.0000001,1e6) = %v, want positive", got)
	}
}
