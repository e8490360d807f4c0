package domain

import "go.trai.ch/zerr"

var (
	// ErrCredentialNotSet is returned when a required credential environment
	// variable is empty at dispatcher construction.
	ErrCredentialNotSet = zerr.New("credential environment variable not set")

	// ErrOptionNotSet is returned when a required build option is missing at
	// dispatcher construction.
	ErrOptionNotSet = zerr.New("required option not set")

	// ErrInvalidMaxLocalBuilds is returned when the build concurrency limit
	// is below 1.
	ErrInvalidMaxLocalBuilds = zerr.New("max local builds must be at least 1")

	// ErrBuildFailed is returned when a debian build subprocess fails.
	ErrBuildFailed = zerr.New("debian build failed")

	// ErrVersionLookupFailed is returned when the service build version
	// cannot be determined for a repository.
	ErrVersionLookupFailed = zerr.New("failed to look up service build version")

	// ErrServiceNotInBom is returned when a repository has no entry in the
	// bill of materials.
	ErrServiceNotInBom = zerr.New("service not present in bom")

	// ErrBomReadFailed is returned when the bom file cannot be read.
	ErrBomReadFailed = zerr.New("failed to read bom file")

	// ErrBomParseFailed is returned when the bom file cannot be parsed.
	ErrBomParseFailed = zerr.New("failed to parse bom file")

	// ErrConfigReadFailed is returned when the release config cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the release config cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrRepositoryNotConfigured is returned when a requested repository is
	// not present in the release config.
	ErrRepositoryNotConfigured = zerr.New("repository not present in config")

	// ErrUploadFailed is returned when the trigger upload cannot complete.
	ErrUploadFailed = zerr.New("failed to upload trigger object")

	// ErrStatusLookupFailed is returned when the status source cannot be
	// queried while constructing a trigger status.
	ErrStatusLookupFailed = zerr.New("failed to query status source")

	// ErrStatusRefreshFailed is returned when refreshing a trigger status
	// delegate fails.
	ErrStatusRefreshFailed = zerr.New("failed to refresh trigger status")

	// ErrPublishCheckFailed is returned when the bintray published-version
	// check cannot complete.
	ErrPublishCheckFailed = zerr.New("failed to check published debian version")

	// ErrTriggerTimedOut is returned by the CLI when the downstream execution
	// did not finish within the wait timeout. A timeout is a distinct outcome
	// from a trigger failure.
	ErrTriggerTimedOut = zerr.New("trigger wait timed out")
)
