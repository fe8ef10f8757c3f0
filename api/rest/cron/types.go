package cron

// JobResponse is the body of a finished job run.
type JobResponse struct {
	OK        bool `json:"ok"`
	Processed int  `json:"processed"`
}
