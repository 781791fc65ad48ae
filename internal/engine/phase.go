package engine

// Phase is one stage of a run. A run advances through the phases in order
// and stops at the first unrecoverable error, which short-circuits straight
// to reporting with a failure outcome.
type Phase int

// Run phases, in execution order.
const (
	ResolvingConfig Phase = iota
	DiscoveringFiles
	SelectingLinters
	Running
	Deciding
	Reporting
	Done
)

var phaseNames = map[Phase]string{
	ResolvingConfig:  "resolving config",
	DiscoveringFiles: "discovering files",
	SelectingLinters: "selecting linters",
	Running:          "running",
	Deciding:         "deciding",
	Reporting:        "reporting",
	Done:             "done",
}

// String returns a human-readable phase name.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}
