// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// RevisionType identifies the kind of draft opened on a dataset.
type RevisionType string

const (
	// RevisionTypeReplace replaces the dataset's content wholesale.
	RevisionTypeReplace RevisionType = "replace"

	// RevisionTypeUpdate amends the dataset without replacing its content.
	RevisionTypeUpdate RevisionType = "update"
)

// Visibility controls who can see the dataset once the revision is applied.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// RevisionAction describes what a revision does to its dataset when applied.
type RevisionAction struct {
	// Type is the revision kind (replace, update).
	Type RevisionType `json:"type"`

	// Permission is the visibility of the dataset after apply.
	Permission Visibility `json:"permission"`
}

// Revision is a server-side draft of changes to a dataset. It is created per
// update operation, mutated in place (source set, attachments appended), and
// superseded once applied.
type Revision struct {
	// ID is the server-assigned numeric revision identifier.
	ID int64 `json:"id"`

	// FourFour is the identifier of the parent dataset.
	FourFour string `json:"fourfour"`

	// Seq is the revision sequence number, unique per dataset. Together with
	// FourFour it addresses every revision-scoped endpoint.
	Seq int64 `json:"revision_seq"`

	// Action describes the effect of applying this revision.
	Action RevisionAction `json:"action"`

	// Attachments is the ordered list of secondary files associated with the
	// dataset. The platform replaces this attribute wholesale on update, so
	// it must always be sent complete.
	Attachments []Attachment `json:"attachments"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// RevisionUpdate carries the attributes to set on an open revision. Only
// non-nil fields are sent. Attachments, when set, must contain the complete
// ordered list: the server does not merge, it replaces.
type RevisionUpdate struct {
	Attachments *[]Attachment `json:"attachments,omitempty"`
}

// Source describes the uploaded blob content of a revision.
type Source struct {
	// ID is the server-assigned source identifier.
	ID int64 `json:"id"`

	// ContentType is the MIME type the server detected for the upload.
	ContentType string `json:"content_type,omitempty"`

	// CreatedAt is the upload timestamp.
	CreatedAt time.Time `json:"created_at"`
}
