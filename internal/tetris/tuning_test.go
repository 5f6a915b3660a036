package tetris

import "testing"

func TestTuningClamped(t *testing.T) {
	in := Tuning{
		DASMs:        -50,
		ARRMs:        9999,
		LockDelayMs:  -1,
		GravityMult:  0,
		SoftDropMult: 100,
	}
	got := in.Clamped()

	if got.DASMs != 0 {
		t.Errorf("DASMs = %v, want 0", got.DASMs)
	}
	if got.ARRMs != 1000 {
		t.Errorf("ARRMs = %v, want 1000", got.ARRMs)
	}
	if got.LockDelayMs != 0 {
		t.Errorf("LockDelayMs = %v, want 0", got.LockDelayMs)
	}
	if got.GravityMult != 0.1 {
		t.Errorf("GravityMult = %v, want 0.1", got.GravityMult)
	}
	if got.SoftDropMult != 10 {
		t.Errorf("SoftDropMult = %v, want 10", got.SoftDropMult)
	}
}

func TestTuningClampedKeepsValid(t *testing.T) {
	in := DefaultTuning()
	if got := in.Clamped(); got != in {
		t.Errorf("Clamped() changed valid tuning: %+v", got)
	}
}

func TestGravityInterval(t *testing.T) {
	tests := []struct {
		name  string
		level int
		mult  float64
		want  float64
	}{
		{"level 0", 0, 1.0, 1000},
		{"level 5", 5, 1.0, 700},
		{"level 10", 10, 1.0, 400},
		{"floor", 20, 1.0, 60},
		{"double speed", 0, 2.0, 500},
		{"slow motion", 0, 0.5, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gravityIntervalMs(tt.level, tt.mult); got != tt.want {
				t.Errorf("gravityIntervalMs(%d, %v) = %v, want %v", tt.level, tt.mult, got, tt.want)
			}
		})
	}
}
