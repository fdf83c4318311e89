package phase

import "testing"

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		from, to ModulePhase
		want     bool
	}{
		{PhaseNotStarted, PhaseParsed, true},
		{PhaseParsed, PhaseLowered, true},
		{PhaseLowered, PhaseOptimized, true},
		{PhaseLowered, PhaseEmitted, true},
		{PhaseOptimized, PhaseEmitted, true},
		{PhaseNotStarted, PhaseLowered, false},
		{PhaseParsed, PhaseEmitted, false},
		{PhaseEmitted, PhaseOptimized, false},
		{PhaseLowered, PhaseLowered, false},
		{PhaseLowered, PhaseNotStarted, false},
	}
	for _, tt := range tests {
		if got := CanAdvance(tt.from, tt.to); got != tt.want {
			t.Errorf("CanAdvance(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAdvance(t *testing.T) {
	p, err := Advance(PhaseNotStarted, PhaseParsed)
	if err != nil || p != PhaseParsed {
		t.Fatalf("Advance = %s, %v", p, err)
	}
	p, err = Advance(p, PhaseEmitted)
	if err == nil {
		t.Fatal("expected an error skipping lowering")
	}
	if p != PhaseParsed {
		t.Errorf("failed Advance changed the phase to %s", p)
	}
}

func TestString(t *testing.T) {
	if PhaseLowered.String() != "Lowered" || ModulePhase(99).String() != "Unknown" {
		t.Error("unexpected phase names")
	}
}
