package drift

import (
	"math"
	"testing"
)

func TestCheck_ExactMultiples(t *testing.T) {
	// Every exact multiple of 90 degrees must report zero delta and pass
	// for any positive threshold.
	for n := -8; n <= 8; n++ {
		angle := float64(n) * math.Pi / 2
		delta, bad := Check(angle, 1e-12)

		if delta != 0 {
			t.Errorf("Check(%d*90°) delta = %v, want 0", n, delta)
		}
		if bad {
			t.Errorf("Check(%d*90°) flagged bad", n)
		}
	}
}

func TestCheck_OffsetBeyondThreshold(t *testing.T) {
	tests := []struct {
		name      string
		degrees   float64
		threshold float64
		wantDelta float64
		wantBad   bool
	}{
		{"just above a multiple", 90.05, 0.01, 0.05, true},
		{"just below a multiple", 89.95, 0.01, 0.05, true},
		{"within threshold", 180.005, 0.01, 0.005, false},
		{"negative angle", -270.02, 0.01, 0.02, true},
		{"halfway between multiples", 45, 0.01, 45, true},
		{"tiny drift below zero", -0.0001, 0.01, 0.0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, bad := Check(tt.degrees*math.Pi/180, tt.threshold)

			if math.Abs(delta-tt.wantDelta) > 1e-9 {
				t.Errorf("delta = %v, want %v", delta, tt.wantDelta)
			}
			if bad != tt.wantBad {
				t.Errorf("bad = %v, want %v", bad, tt.wantBad)
			}
		})
	}
}

func TestCheck_FoldsToNearestMultiple(t *testing.T) {
	// 89.99998° is drift of 2e-5 from 90°, not 89.99998 from 0.
	delta, bad := Check(89.99998*math.Pi/180, 0.001)

	if math.Abs(delta-0.00002) > 1e-6 {
		t.Errorf("delta = %v, want ≈0.00002", delta)
	}
	if bad {
		t.Error("near-multiple angle flagged bad")
	}
}

func TestCheck_SymmetricInSign(t *testing.T) {
	for _, deg := range []float64{0.02, 44, 46, 89.9, 133, 272.5} {
		pd, pb := Check(deg*math.Pi/180, 0.01)
		nd, nb := Check(-deg*math.Pi/180, 0.01)

		if pd != nd || pb != nb {
			t.Errorf("Check(±%v°) differ: (%v,%v) vs (%v,%v)", deg, pd, pb, nd, nb)
		}
	}
}

func TestCheck_AccumulatedFloat32Drift(t *testing.T) {
	// Simulate the incremental strategy: accumulate float32(pi/2) many
	// times. The accumulated angle drifts measurably but stays well under
	// a degree, so a loose threshold passes and a strict one fails.
	var angle float32
	step := float32(math.Pi / 2)
	for i := 0; i < 1000; i++ {
		angle += step
	}

	delta, _ := Check(float64(angle), 0)
	if delta == 0 {
		t.Fatal("expected nonzero accumulated drift")
	}
	if delta > 1 {
		t.Fatalf("accumulated drift implausibly large: %v°", delta)
	}

	if _, bad := Check(float64(angle), 45); bad {
		t.Error("loose threshold flagged accumulated drift")
	}
	if _, bad := Check(float64(angle), delta/2); !bad {
		t.Error("strict threshold missed accumulated drift")
	}
}
