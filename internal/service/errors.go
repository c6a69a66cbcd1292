package service

import "errors"

var (
	// ErrUnsupportedAction is returned when the request names an action
	// the bridge has no handler for.
	ErrUnsupportedAction = errors.New("unsupported action")

	// ErrBadRequest is returned when an action's parameters are missing
	// or malformed. Distinguishable from engine failures: the collection
	// was never touched.
	ErrBadRequest = errors.New("bad request")

	// ErrSyncDirectionRequired is returned by fullSync when a full sync is
	// pending but no valid mode parameter was supplied. Nothing is mutated.
	ErrSyncDirectionRequired = errors.New("full sync required: supply mode \"upload\" or \"download\"")

	// ErrFullSyncRequired is rendered by the sync action when an
	// incremental sync is impossible and explicit intent is needed.
	ErrFullSyncRequired = errors.New("full sync required: use the fullSync action")
)
