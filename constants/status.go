package constants

// JobStatus is the canonical status for rows in analysis_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued       JobStatus = "QUEUED"       // queued for processing
	JobStatusRunning      JobStatus = "RUNNING"      // in progress
	JobStatusDone         JobStatus = "DONE"         // analysis completed with full coverage
	JobStatusPartial      JobStatus = "PARTIAL"      // analysis completed with dropped chunks
	JobStatusInsufficient JobStatus = "INSUFFICIENT" // content too short to analyze
	JobStatusFailed       JobStatus = "FAILED"       // terminal failure
)

// JobStatuses holds the allowed values for the status field in AnalysisJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusDone),
	string(JobStatusPartial),
	string(JobStatusInsufficient),
	string(JobStatusFailed),
}
