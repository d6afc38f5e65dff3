package model

// RunResult summarizes one successful pipeline run.
type RunResult struct {
	RunID         string
	Success       bool
	ArticlesCount int
	Script        string
	ScriptLength  int
	AudioFile     string
}
