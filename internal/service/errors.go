// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoIdeaSelected is returned by SyncReports for an empty idea id.
	ErrNoIdeaSelected = errors.New("no idea selected")

	// ErrEmptyNote is returned by AddNote when the title is blank.
	ErrEmptyNote = errors.New("note title is empty")
)
