package phase

import "fmt"

// ModulePhase tracks how far a compilation unit has progressed.
//
// Progression:
// - NotStarted -> Parsed -> Lowered (lowered and validated)
// - Lowered -> Optimized -> Emitted, or Lowered -> Emitted without -O
//
// Transitions are checked against PhasePrerequisites by CanAdvance.
type ModulePhase int

const (
	PhaseNotStarted ModulePhase = iota // Source loaded, nothing run yet
	PhaseParsed                        // AST built and type checked
	PhaseLowered                       // Module built and validated
	PhaseOptimized                     // Constant adds folded
	PhaseEmitted                       // Binary encoded
)

// PhasePrerequisites maps each phase to the phase a unit must at least have
// reached before entering it. Optimization is optional, so Emitted only
// needs Lowered.
var PhasePrerequisites = map[ModulePhase]ModulePhase{
	PhaseParsed:    PhaseNotStarted,
	PhaseLowered:   PhaseParsed,
	PhaseOptimized: PhaseLowered,
	PhaseEmitted:   PhaseLowered,
}

func (p ModulePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseParsed:
		return "Parsed"
	case PhaseLowered:
		return "Lowered"
	case PhaseOptimized:
		return "Optimized"
	case PhaseEmitted:
		return "Emitted"
	default:
		return "Unknown"
	}
}

// CanAdvance reports whether a unit in phase from may move to phase to.
// Phases never move backwards.
func CanAdvance(from, to ModulePhase) bool {
	required, ok := PhasePrerequisites[to]
	return ok && to > from && from >= required
}

// Advance returns the next phase, or an error when the move is not allowed.
func Advance(from, to ModulePhase) (ModulePhase, error) {
	if !CanAdvance(from, to) {
		return from, fmt.Errorf("cannot advance from %s to %s", from, to)
	}
	return to, nil
}
