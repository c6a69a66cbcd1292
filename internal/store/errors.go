// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrCollectionNotFound is returned by [Open] when the collection file
	// does not exist and creation was not requested. This is a fatal
	// startup condition: the server has no useful degraded mode without
	// a store.
	ErrCollectionNotFound = errors.New("collection file not found")

	// ErrOpeningCollection wraps low-level failures while opening or
	// pinging the collection database.
	ErrOpeningCollection = errors.New("error opening collection database")
)
