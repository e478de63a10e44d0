package logfields

const (
	LogSubsys    = "subsys"
	LogComponent = "component"

	// File the input file path
	File = "file"
	// Line the 1-based line number in an input file
	Line = "line"

	Symbol  = "symbol"
	Symbols = "symbols"
	Kind    = "kind"
	Workers = "workers"
	Matcher = "matcher"
)
