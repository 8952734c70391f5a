package bigfloat

import "testing"

func TestExp_Zero(t *testing.T) {
	got, err := Exp(Zero(10), 30)
	if err != nil {
		t.Fatalf("Exp(0) failed: %v", err)
	}
	if want := One(10).WithPrecision(30); !got.Equal(want) {
		t.Errorf("Exp(0) = %v, want 1", got)
	}
}

func TestExp_Boundary(t *testing.T) {
	got, err := Exp(MustParse("1", 30, 10), 30)
	if err != nil {
		t.Fatalf("Exp(1) failed: %v", err)
	}
	want := MustParse("2.71828182845904523536028747135", 30, 10)
	if got.EqualDigits(want) < 25 {
		t.Errorf("Exp(1) = %v, want %v", got, want)
	}
}

func TestExp_LogRoundTrip(t *testing.T) {
	x := MustParse("3.5", 30, 10)
	l, err := Log(x, 30)
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	back, err := Exp(l, 30)
	if err != nil {
		t.Fatalf("Exp failed: %v", err)
	}
	if back.EqualDigits(x) < 20 {
		t.Errorf("exp(log(3.5)) = %v, want ~3.5", back)
	}
}

func TestExp_Sum(t *testing.T) {
	a := MustParse("0.5", 30, 10)
	b := MustParse("1.5", 30, 10)

	ea, err := Exp(a, 30)
	if err != nil {
		t.Fatalf("Exp(a) failed: %v", err)
	}
	eb, err := Exp(b, 30)
	if err != nil {
		t.Fatalf("Exp(b) failed: %v", err)
	}
	eab, err := Exp(a.Add(b), 30)
	if err != nil {
		t.Fatalf("Exp(a+b) failed: %v", err)
	}
	prod := ea.Mul(eb).WithPrecision(20)
	if prod.EqualDigits(eab.WithPrecision(20)) < 15 {
		t.Errorf("exp(a)*exp(b) = %v, want exp(a+b) = %v", prod, eab)
	}
}

func TestExp_OverflowGuard(t *testing.T) {
	huge := MustParse("1e30", 30, 10)
	if _, err := Exp(huge, 30); err == nil {
		t.Errorf("Exp(1e30) succeeded, want overflow error")
	}
}

func TestExp_ShallowUnderflowShortcut(t *testing.T) {
	tiny := MustParse("1e-20", 30, 10)
	got, err := Exp(tiny, 30)
	if err != nil {
		t.Fatalf("Exp(1e-20) failed: %v", err)
	}
	want := One(10).Add(tiny).WithPrecision(30)
	if !got.Equal(want) {
		t.Errorf("Exp(1e-20) = %v, want 1+x = %v", got, want)
	}
}
