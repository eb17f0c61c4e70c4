package main

// RunSummary stores mhchain run summary information.
type RunSummary struct {
	// Version stores mhchain version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Seed is the seed used for random number generation initialization.
	Seed int64 `json:"seed"`
	// Model is the sampled model name.
	Model string `json:"model"`
	// Samples is the total chain length, including the initial state.
	Samples int `json:"samples"`
	// BurnIn is the burn-in fraction.
	BurnIn float64 `json:"burnIn"`
	// Accepted is the number of accepted steps.
	Accepted int `json:"accepted"`
	// Rejected is the number of rejected steps.
	Rejected int `json:"rejected"`
	// Mean is the per-component empirical mean of the output samples.
	Mean []float64 `json:"mean,omitempty"`
	// SD is the per-component empirical standard deviation of the output samples.
	SD []float64 `json:"sd,omitempty"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}
