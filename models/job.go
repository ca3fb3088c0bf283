// SPDX-License-Identifier: Apache-2.0

package models

// JobStatus is the lifecycle state of an asynchronous publish job.
type JobStatus string

const (
	JobStatusPending      JobStatus = "pending"
	JobStatusInitializing JobStatus = "initializing"
	JobStatusInProgress   JobStatus = "in_progress"
	JobStatusSuccessful   JobStatus = "successful"
	JobStatusFailure      JobStatus = "failure"
)

// Terminal reports whether the status is final and polling can stop.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSuccessful || s == JobStatusFailure
}

// Succeeded reports whether the job finished successfully.
func (s JobStatus) Succeeded() bool {
	return s == JobStatusSuccessful
}

// Job is the asynchronous server-side task created when a revision is
// applied. The client never persists jobs; it only polls them until a
// terminal status is reached.
type Job struct {
	// ID is the server-assigned job identifier.
	ID int64 `json:"id"`

	// Status is the current lifecycle state.
	Status JobStatus `json:"task_sets_status"`

	// FourFour identifies the dataset the job publishes.
	FourFour string `json:"fourfour"`

	// Seq is the sequence number of the revision being published.
	Seq int64 `json:"revision_seq"`

	// Log holds the most recent server-side progress message, when the
	// platform reports one.
	Log string `json:"log,omitempty"`
}
