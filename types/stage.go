package types

// StageKind identifies one stage of the compilation pipeline.
//
// Stages form a strict total order: running "up to" a stage executes every
// stage from StageParse through that stage inclusive, and nothing after it.
type StageKind int

const (
	// StageParse lexes and parses source text into a tree.
	StageParse StageKind = iota
	// StageDesugar lowers surface constructs into the core tree.
	StageDesugar
	// StageAnalysis resolves names and infers types; evaluation, when
	// enabled, happens at the end of this stage.
	StageAnalysis
)

// String returns the stage name.
func (s StageKind) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageDesugar:
		return "desugar"
	case StageAnalysis:
		return "analysis"
	default:
		return "unknown"
	}
}

// Includes reports whether running up to s executes stage other.
func (s StageKind) Includes(other StageKind) bool {
	return other <= s
}
