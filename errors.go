package metro

import "errors"

var (
	// ErrEngineNotReady is returned when an Engine method is called on a
	// nil or unbuilt engine.
	ErrEngineNotReady = errors.New("engine not ready")
	// ErrNoToken is returned by profile operations when no bearer token
	// is stored; no network call is attempted.
	ErrNoToken = errors.New("no token available")
	// ErrAuthAPIRequired is returned by Build when neither an API client
	// nor an auth API was provided.
	ErrAuthAPIRequired = errors.New("auth api required")
	// ErrUserAPIRequired is returned by Build when neither an API client
	// nor a user API was provided.
	ErrUserAPIRequired = errors.New("user api required")
	// ErrAlreadyBuilt is returned when Build is called twice on the same
	// builder.
	ErrAlreadyBuilt = errors.New("builder already built")
)
