// Package validate issue types and fix geometry.
package validate

import (
	"github.com/velmara/gridforge/geom"
)

// Severity grades an issue. Only errors block validity.
type Severity string

const (
	// SeverityError marks a design invariant violation.
	SeverityError Severity = "error"
	// SeverityWarning marks a suspicious but playable condition.
	SeverityWarning Severity = "warning"
)

// IssueKind names the violated rule.
type IssueKind string

const (
	// KindIslandIsolated: an island holds a main outside the main game area.
	KindIslandIsolated IssueKind = "island_isolated"
	// KindMainUnreachable: two mains cannot reach each other.
	KindMainUnreachable IssueKind = "main_unreachable"
	// KindNaturalUnreachable: a main cannot reach its closest natural.
	KindNaturalUnreachable IssueKind = "natural_unreachable"
	// KindExpansionIsolated: an island holds expansions but no main.
	KindExpansionIsolated IssueKind = "expansion_isolated"
	// KindMissingRamp: a near, blocked, climb-exceeding pair wants a ramp.
	KindMissingRamp IssueKind = "missing_ramp"
)

// FixKind names a synthesizable repair.
type FixKind string

const (
	// FixAddRamp paints a corrective ramp; the only kind the fixer can
	// currently synthesize.
	FixAddRamp FixKind = "add_ramp"
	// FixLowerElevation suggests flattening terrain (reported, never
	// synthesized).
	FixLowerElevation FixKind = "lower_elevation"
	// FixRemoveObstacle suggests clearing features (reported, never
	// synthesized).
	FixRemoveObstacle FixKind = "remove_obstacle"
)

// SuggestedFix is the machine-actionable repair attached to an issue.
// For FixAddRamp, From→To is the ramp segment to paint and Width its full
// corridor width; the paint engine's auto-extension handles any remaining
// climb excess.
type SuggestedFix struct {
	Kind  FixKind    `json:"kind"`
	From  geom.Point `json:"from"`
	To    geom.Point `json:"to"`
	Width float64    `json:"width"`
}

// Issue is one structured validation finding.
type Issue struct {
	Severity      Severity      `json:"severity"`
	Kind          IssueKind     `json:"kind"`
	Message       string        `json:"message"`
	AffectedNodes []string      `json:"affectedNodes"`
	Fix           *SuggestedFix `json:"suggestedFix,omitempty"`
}

// Result is the outcome of one validation pass.
type Result struct {
	Issues []Issue `json:"issues"`
	// Valid is true iff no issue has error severity.
	Valid bool `json:"valid"`
}

// Errors returns only the error-severity issues.
func (r Result) Errors() []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			out = append(out, is)
		}
	}
	return out
}

// Warnings returns only the warning-severity issues.
func (r Result) Warnings() []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Severity == SeverityWarning {
			out = append(out, is)
		}
	}
	return out
}
