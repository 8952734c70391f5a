package bigfloat

import "testing"

func TestSqrt_Square(t *testing.T) {
	x := MustParse("2", 40, 10)
	s, err := Sqrt(x)
	if err != nil {
		t.Fatalf("Sqrt(2) failed: %v", err)
	}
	sq := s.Mul(s).WithPrecision(30)
	if sq.EqualDigits(x.WithPrecision(30)) < 25 {
		t.Errorf("sqrt(2)^2 = %v, want ~2", sq)
	}
}

func TestSqrt_Boundary(t *testing.T) {
	s, err := Sqrt(MustParse("2", 40, 10))
	if err != nil {
		t.Fatalf("Sqrt(2) failed: %v", err)
	}
	// 40 correct digits of sqrt(2).
	want := MustParse("1.414213562373095048801688724209698078569", 40, 10)
	if s.EqualDigits(want) < 30 {
		t.Errorf("Sqrt(2,40) = %v, want %v", s, want)
	}
}

func TestSqrt_NegativeError(t *testing.T) {
	if _, err := Sqrt(MustParse("-1", 10, 10)); err == nil {
		t.Errorf("Sqrt(-1) succeeded, want error")
	}
}

func TestCbrt_Cube(t *testing.T) {
	x := MustParse("27", 30, 10)
	c, err := Cbrt(x)
	if err != nil {
		t.Fatalf("Cbrt(27) failed: %v", err)
	}
	want := MustParse("3", 30, 10)
	if c.EqualDigits(want) < 20 {
		t.Errorf("Cbrt(27) = %v, want ~3", c)
	}
}

func TestRoot_NegativeOddIndex(t *testing.T) {
	x := MustParse("-8", 30, 10)
	c, err := Root(x, 3)
	if err != nil {
		t.Fatalf("Root(-8,3) failed: %v", err)
	}
	want := MustParse("-2", 30, 10)
	if c.EqualDigits(want) < 20 {
		t.Errorf("Root(-8,3) = %v, want ~-2", c)
	}
}

func TestRoot_EvenIndexOfNegative(t *testing.T) {
	if _, err := Root(MustParse("-4", 10, 10), 2); err == nil {
		t.Errorf("Root(-4,2) succeeded, want error")
	}
}

func TestRoot_ZerothRoot(t *testing.T) {
	if _, err := Root(MustParse("4", 10, 10), 0); err == nil {
		t.Errorf("Root(x,0) succeeded, want error")
	}
}

func TestInverseRoot_ReciprocalOfRoot(t *testing.T) {
	x := MustParse("5", 40, 10)
	r, err := Root(x, 4)
	if err != nil {
		t.Fatalf("Root(5,4) failed: %v", err)
	}
	inv, err := InverseRoot(x, 4)
	if err != nil {
		t.Fatalf("InverseRoot(5,4) failed: %v", err)
	}
	product := r.Mul(inv).WithPrecision(20)
	if product.EqualDigits(One(10).WithPrecision(20)) < 15 {
		t.Errorf("root(x,4) * inverseRoot(x,4) = %v, want ~1", product)
	}
}
