package metrics

import "time"

// AgentConfig describes one search agent taking part in an experiment.
type AgentConfig struct {
	ID         int           `yaml:"id"`
	Goroutines int           `yaml:"goroutines"`
	Duration   time.Duration `yaml:"duration"`
	Episodes   int           `yaml:"episodes"`
	Cutoff     int           `yaml:"cutoff"`
	Evaluation string        `yaml:"evaluation"` // Name of the cutoff evaluation function
	Training   bool          `yaml:"training"`   // Sample moves instead of playing the most visited
}
