package models

// ResultStatus tells callers whether an operation backed by an external
// dependency ran normally, fell back, or did nothing.
type ResultStatus string

const (
	StatusSuccess  ResultStatus = "success"
	StatusDegraded ResultStatus = "degraded"
	StatusFailed   ResultStatus = "failed"
)
