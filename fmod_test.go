package bigfloat

import "testing"

func TestFmod_Basic(t *testing.T) {
	got, err := Fmod(MustParse("10", 20, 10), MustParse("3", 20, 10))
	if err != nil {
		t.Fatalf("Fmod(10,3) failed: %v", err)
	}
	if want := MustParse("1", 20, 10); !got.Equal(want) {
		t.Errorf("Fmod(10,3) = %v, want 1", got)
	}
}

func TestFmod_NegativeDividend(t *testing.T) {
	got, err := Fmod(MustParse("-10", 20, 10), MustParse("3", 20, 10))
	if err != nil {
		t.Fatalf("Fmod(-10,3) failed: %v", err)
	}
	if want := MustParse("-1", 20, 10); !got.Equal(want) {
		t.Errorf("Fmod(-10,3) = %v, want -1", got)
	}
}

func TestFmod_ByZero(t *testing.T) {
	got, err := Fmod(MustParse("5", 20, 10), Zero(10))
	if err != nil {
		t.Fatalf("Fmod(5,0) failed: %v", err)
	}
	if got.Sign() != 0 {
		t.Errorf("Fmod(5,0) = %v, want 0", got)
	}
}

func TestFmod_SignMatchesDividend(t *testing.T) {
	x := MustParse("-7.5", 20, 10)
	y := MustParse("2", 20, 10)
	got, err := Fmod(x, y)
	if err != nil {
		t.Fatalf("Fmod failed: %v", err)
	}
	if got.Sign() > 0 {
		t.Errorf("Fmod(-7.5,2) = %v, want non-positive", got)
	}
	if got.Abs().Cmp(y.Abs()) >= 0 {
		t.Errorf("Fmod(-7.5,2) = %v, want magnitude < 2", got)
	}
}

func TestModf_SplitsIntegerAndFraction(t *testing.T) {
	x := MustParse("3.25", 20, 10)
	intPart, fracPart := Modf(x)
	if want := MustParse("3", 20, 10); !intPart.Equal(want) {
		t.Errorf("Modf(3.25) intPart = %v, want 3", intPart)
	}
	if want := MustParse("0.25", 20, 10); !fracPart.Equal(want) {
		t.Errorf("Modf(3.25) fracPart = %v, want 0.25", fracPart)
	}
}

func TestModf_Negative(t *testing.T) {
	x := MustParse("-3.25", 20, 10)
	intPart, fracPart := Modf(x)
	if want := MustParse("-3", 20, 10); !intPart.Equal(want) {
		t.Errorf("Modf(-3.25) intPart = %v, want -3", intPart)
	}
	if want := MustParse("-0.25", 20, 10); !fracPart.Equal(want) {
		t.Errorf("Modf(-3.25) fracPart = %v, want -0.25", fracPart)
	}
}
