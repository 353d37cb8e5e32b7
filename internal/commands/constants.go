package commands

// Output formats accepted by the -o flag.
const (
	outputText  = "text"
	outputJSON  = "json"
	outputYAML  = "yaml"
	outputGraph = "graph"
)
