package bigfloat

import "testing"

func TestSinCos_Pythagorean(t *testing.T) {
	angles := []string{"0", "0.5", "1", "2", "-1.3", "3.14"}
	for _, a := range angles {
		t.Run(a, func(t *testing.T) {
			x := MustParse(a, 30, 10)
			s, err := Sin(x, 30)
			if err != nil {
				t.Fatalf("Sin(%s) failed: %v", a, err)
			}
			c, err := Cos(x, 30)
			if err != nil {
				t.Fatalf("Cos(%s) failed: %v", a, err)
			}
			sum := s.Mul(s).Add(c.Mul(c)).WithPrecision(20)
			if sum.EqualDigits(One(10).WithPrecision(20)) < 15 {
				t.Errorf("sin(%s)^2+cos(%s)^2 = %v, want 1", a, a, sum)
			}
		})
	}
}

func TestTan_MatchesSinOverCos(t *testing.T) {
	x := MustParse("0.7", 30, 10)
	s, err := Sin(x, 30)
	if err != nil {
		t.Fatalf("Sin failed: %v", err)
	}
	c, err := Cos(x, 30)
	if err != nil {
		t.Fatalf("Cos failed: %v", err)
	}
	tn, err := Tan(x, 30)
	if err != nil {
		t.Fatalf("Tan failed: %v", err)
	}
	ratio, err := s.QuoPrecision(c, 20)
	if err != nil {
		t.Fatalf("Quo failed: %v", err)
	}
	if tn.WithPrecision(20).EqualDigits(ratio) < 15 {
		t.Errorf("tan(0.7) = %v, want sin/cos = %v", tn, ratio)
	}
}

func TestTan_DomainError(t *testing.T) {
	half, err := PiRadix(10, 30)
	if err != nil {
		t.Fatalf("Pi failed: %v", err)
	}
	two := NewInt(2, 10).WithPrecision(30)
	halfPi, err := half.QuoPrecision(two, 30)
	if err != nil {
		t.Fatalf("Quo failed: %v", err)
	}
	if _, err := Tan(halfPi, 30); err == nil {
		t.Errorf("Tan(pi/2) succeeded, want error")
	}
}

func TestAtan2_RoundTrip(t *testing.T) {
	x := MustParse("1.1", 30, 10)
	s, err := Sin(x, 30)
	if err != nil {
		t.Fatalf("Sin failed: %v", err)
	}
	c, err := Cos(x, 30)
	if err != nil {
		t.Fatalf("Cos failed: %v", err)
	}
	got, err := Atan2(s, c, 30)
	if err != nil {
		t.Fatalf("Atan2 failed: %v", err)
	}
	if got.WithPrecision(20).EqualDigits(x.WithPrecision(20)) < 15 {
		t.Errorf("atan2(sin(1.1),cos(1.1)) = %v, want ~1.1", got)
	}
}

func TestAtan2_ZeroZeroError(t *testing.T) {
	if _, err := Atan2(Zero(10), Zero(10), 30); err == nil {
		t.Errorf("Atan2(0,0) succeeded, want error")
	}
}

func TestAsinAcos_DomainError(t *testing.T) {
	if _, err := Asin(MustParse("1.5", 20, 10), 20); err == nil {
		t.Errorf("Asin(1.5) succeeded, want error")
	}
	if _, err := Acos(MustParse("-1.5", 20, 10), 20); err == nil {
		t.Errorf("Acos(-1.5) succeeded, want error")
	}
}

func TestAsin_Endpoints(t *testing.T) {
	one := MustParse("1", 30, 10)
	got, err := Asin(one, 30)
	if err != nil {
		t.Fatalf("Asin(1) failed: %v", err)
	}
	halfPiWant, err := PiRadix(10, 30)
	if err != nil {
		t.Fatalf("Pi failed: %v", err)
	}
	halfPiWant, err = halfPiWant.QuoPrecision(NewInt(2, 10).WithPrecision(30), 30)
	if err != nil {
		t.Fatalf("Quo failed: %v", err)
	}
	if got.EqualDigits(halfPiWant) < 20 {
		t.Errorf("Asin(1) = %v, want pi/2 = %v", got, halfPiWant)
	}
}
