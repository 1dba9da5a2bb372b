package decompose

import (
	"errors"
	"fmt"
)

// errAxiomViolation is the unwrapped sentinel; ErrAxiomViolation is the
// public, package-prefixed wrapper, following the same double-wrapped
// sentinel-error convention used elsewhere in this module.
var errAxiomViolation = errors.New("tree decomposition axiom violated")

// ErrAxiomViolation is returned by Check when T1, T2, or T3 is violated.
var ErrAxiomViolation = fmt.Errorf("decompose: %w", errAxiomViolation)

// ErrUnreachable marks an internal invariant violation: a state the growth
// engine's construction should make impossible. Panics are reserved for
// genuinely impossible states rather than surfaced as ordinary errors;
// callers should treat a panic carrying this sentinel as a defect in the
// engine, not in caller input.
var ErrUnreachable = errors.New("decompose: internal invariant violated")

// AxiomError carries the structured diagnostic payload produced when Check
// finds a violation. It implements error so callers can errors.Is against
// ErrAxiomViolation while still reaching the full diagnostic via As.
type AxiomError struct {
	Diagnostic *Diagnostic
}

func (e *AxiomError) Error() string {
	return fmt.Sprintf("%s: %s", errAxiomViolation, e.Diagnostic.Summary())
}

// Is reports whether target is ErrAxiomViolation, so callers can write
// errors.Is(err, decompose.ErrAxiomViolation) against a returned *AxiomError.
func (e *AxiomError) Is(target error) bool { return target == ErrAxiomViolation }
