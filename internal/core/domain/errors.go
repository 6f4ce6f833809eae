package domain

import "go.trai.ch/zerr"

var (
	// ErrTransport is returned when the model server cannot be reached (DNS, connect, timeout).
	ErrTransport = zerr.New("transport failure")

	// ErrRemote is returned when the model server answers with a non-2xx status.
	ErrRemote = zerr.New("remote request failed")

	// ErrNotFoundInCache is returned when navigating to an id that was never fetched and the fetch failed.
	ErrNotFoundInCache = zerr.New("element not found in cache")

	// ErrElementDecode is returned when a response body cannot be decoded as an element.
	ErrElementDecode = zerr.New("failed to decode element")

	// ErrMissingCredentials is returned when no username/password could be resolved from any source.
	ErrMissingCredentials = zerr.New("missing credentials")

	// ErrCredentialsReadFailed is returned when the credentials properties file cannot be read.
	ErrCredentialsReadFailed = zerr.New("failed to read credentials file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrProjectRequired is returned when an operation is invoked without a project id.
	ErrProjectRequired = zerr.New("project id required")

	// ErrProjectNotFound is returned when the requested project does not exist on the server.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrNoCommits is returned when a project has no commits to resolve a head from.
	ErrNoCommits = zerr.New("project has no commits")

	// ErrReportWriteFailed is returned when a generated report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrExportWriteFailed is returned when an export file cannot be written.
	ErrExportWriteFailed = zerr.New("failed to write export file")

	// ErrLogFileOpenFailed is returned when the diagnostic log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")
)
