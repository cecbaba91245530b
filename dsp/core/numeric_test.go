package core

import (
	"math"
	"testing"
)

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	if db := LinearToDB(linear); math.Abs(db+6) > 1e-10 {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
	if g := DBToLinear(20); math.Abs(g-10) > 1e-12 {
		t.Fatalf("DBToLinear(20) = %v, want 10", g)
	}
}

func TestOmegaConversions(t *testing.T) {
	if w := HzToOmega(24000, 48000); math.Abs(w-math.Pi) > 1e-15 {
		t.Fatalf("HzToOmega(nyquist) = %v, want pi", w)
	}
	if f := OmegaToHz(HzToOmega(1234, 44100), 44100); math.Abs(f-1234) > 1e-9 {
		t.Fatalf("round trip = %v, want 1234", f)
	}
}
