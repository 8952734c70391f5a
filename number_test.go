package bigfloat

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		s     string
		radix int
		want  string
	}{
		{"123", 10, "123e0"},
		{"-123", 10, "-123e0"},
		{"1.25", 10, "125e-2"},
		{"1e3", 10, "1e3"},
		{"ff", 16, "ffe0"},
		{"0.1", 2, "1e-1"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := Parse(tt.s, Infinite, tt.radix)
			if err != nil {
				t.Fatalf("Parse(%q, Infinite, %d) failed: %v", tt.s, tt.radix, err)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q, Infinite, %d).String() = %q, want %q", tt.s, tt.radix, got.String(), tt.want)
			}
		})
	}
}

func TestParse_InvalidRadix(t *testing.T) {
	if _, err := Parse("1", Infinite, 1); err == nil {
		t.Errorf("Parse with radix 1 succeeded, want error")
	}
	if _, err := Parse("1", Infinite, 37); err == nil {
		t.Errorf("Parse with radix 37 succeeded, want error")
	}
}

func TestNumber_AddSub(t *testing.T) {
	a := MustParse("1.5", Infinite, 10)
	b := MustParse("0.25", Infinite, 10)

	sum := a.Add(b)
	if want := MustParse("1.75", Infinite, 10); !sum.Equal(want) {
		t.Errorf("1.5 + 0.25 = %v, want %v", sum, want)
	}

	diff := a.Sub(b)
	if want := MustParse("1.25", Infinite, 10); !diff.Equal(want) {
		t.Errorf("1.5 - 0.25 = %v, want %v", diff, want)
	}
}

func TestNumber_MulQuo(t *testing.T) {
	a := MustParse("2", Infinite, 10)
	b := MustParse("3", Infinite, 10)

	prod := a.Mul(b)
	if want := MustParse("6", Infinite, 10); !prod.Equal(want) {
		t.Errorf("2 * 3 = %v, want %v", prod, want)
	}

	q, err := a.QuoPrecision(b, 10)
	if err != nil {
		t.Fatalf("QuoPrecision failed: %v", err)
	}
	back := q.Mul(b).WithPrecision(8)
	want := a.WithPrecision(8)
	if !back.Equal(want) {
		t.Errorf("(2/3)*3 = %v, want ~%v", back, want)
	}
}

func TestNumber_QuoInfiniteInfinite(t *testing.T) {
	a := NewInt(1, 10)
	b := NewInt(3, 10)
	if _, err := a.Quo(b); err == nil {
		t.Errorf("Quo with both operands Infinite precision succeeded, want error")
	}
}

func TestNumber_DivideByZero(t *testing.T) {
	a := NewInt(1, 10)
	b := Zero(10)
	if _, err := a.QuoPrecision(b, 10); err == nil {
		t.Errorf("QuoPrecision by zero succeeded, want error")
	}
}

func TestNumber_WithPrecisionRounding(t *testing.T) {
	x := MustParse("12345", Infinite, 10)
	got := x.WithPrecision(3)
	if want := MustParse("1.23e4", Infinite, 10); !got.Equal(want) {
		t.Errorf("12345 rounded to 3 digits = %v, want %v", got, want)
	}
}

func TestNumber_EqualDigits(t *testing.T) {
	a := MustParse("1.23456", Infinite, 10)
	b := MustParse("1.23450", Infinite, 10)
	if got := a.EqualDigits(b); got < 4 {
		t.Errorf("EqualDigits(%v, %v) = %d, want at least 4", a, b, got)
	}
	zero := Zero(10)
	if got := zero.EqualDigits(a); got != 0 {
		t.Errorf("EqualDigits(0, x) = %d, want 0", got)
	}
}

func TestNumber_TruncateFloorCeil(t *testing.T) {
	pos := MustParse("2.7", Infinite, 10)
	neg := MustParse("-2.7", Infinite, 10)

	if got := pos.Truncate(); !got.Equal(NewInt(2, 10)) {
		t.Errorf("Truncate(2.7) = %v, want 2", got)
	}
	if got := neg.Truncate(); !got.Equal(NewInt(-2, 10)) {
		t.Errorf("Truncate(-2.7) = %v, want -2", got)
	}
	if got := pos.Floor(); !got.Equal(NewInt(2, 10)) {
		t.Errorf("Floor(2.7) = %v, want 2", got)
	}
	if got := neg.Floor(); !got.Equal(NewInt(-3, 10)) {
		t.Errorf("Floor(-2.7) = %v, want -3", got)
	}
	if got := pos.Ceil(); !got.Equal(NewInt(3, 10)) {
		t.Errorf("Ceil(2.7) = %v, want 3", got)
	}
	if got := neg.Ceil(); !got.Equal(NewInt(-2, 10)) {
		t.Errorf("Ceil(-2.7) = %v, want -2", got)
	}
}
