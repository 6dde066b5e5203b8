package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestInterp(t *testing.T) {
	xs := []float64{0, 10, 20, 40}
	ys := []float64{0, 100, 150, 170}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"below first point", -5, 0},
		{"first point", 0, 0},
		{"inside first segment", 5, 50},
		{"interior point", 10, 100},
		{"inside middle segment", 15, 125},
		{"inside last segment", 30, 160},
		{"last point", 40, 170},
		{"above last point", 1000, 170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interp(tt.x, xs, ys)
			if err != nil {
				t.Fatalf("Interp() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Interp(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestInterp_Errors(t *testing.T) {
	if _, err := Interp(1, []float64{0, 2, 1}, []float64{0, 1, 2}); !errors.Is(err, ErrNotMonotonic) {
		t.Errorf("decreasing xs: error = %v, want ErrNotMonotonic", err)
	}
	if _, err := Interp(1, []float64{0, 1, 1}, []float64{0, 1, 2}); !errors.Is(err, ErrNotMonotonic) {
		t.Errorf("repeated xs: error = %v, want ErrNotMonotonic", err)
	}
	if _, err := Interp(1, []float64{0, 1}, []float64{0}); err == nil {
		t.Error("length mismatch: expected error, got nil")
	}
	if _, err := Interp(1, nil, nil); err == nil {
		t.Error("empty curve: expected error, got nil")
	}
	if _, err := Interp(math.NaN(), []float64{0, 1}, []float64{0, 1}); err == nil {
		t.Error("NaN x: expected error, got nil")
	}
}
