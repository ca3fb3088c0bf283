// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrPublishFailed indicates a publish job that reached a terminal
	// failure status.
	ErrPublishFailed = errors.New("publish job failed")
	// ErrPublishTimeout indicates the poll timeout elapsed before the
	// publish job reached a terminal status. The job keeps running
	// server-side; the revision must be reconciled manually.
	ErrPublishTimeout = errors.New("timed out waiting for publish job")
	// ErrAttachmentContent indicates an [AttachmentContent] that does not
	// carry exactly one of a file path or an in-memory payload.
	ErrAttachmentContent = errors.New("attachment content must set exactly one of path or bytes")
	// ErrInvalidCustomField indicates an empty custom field category or name.
	ErrInvalidCustomField = errors.New("custom field category and name are required")
)
