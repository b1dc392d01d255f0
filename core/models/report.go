package models

// FileFailure records a descriptor that could not be turned into a
// declaration file.
type FileFailure struct {
	Path string
	Err  error
}

// Report summarizes one generation run over a descriptor tree.
type Report struct {
	Root      string
	Generated []string
	Skipped   []string
	Failures  []FileFailure
}

func (r *Report) AddGenerated(outputPath string) {
	r.Generated = append(r.Generated, outputPath)
}

func (r *Report) AddSkipped(path string) {
	r.Skipped = append(r.Skipped, path)
}

func (r *Report) AddFailure(path string, err error) {
	r.Failures = append(r.Failures, FileFailure{Path: path, Err: err})
}

func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}
