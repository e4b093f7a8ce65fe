package error

import "errors"

// Curation domain errors.
var (
	// ErrTrackNotFound is returned when a track id is not in the catalog.
	ErrTrackNotFound = errors.New("track not found")

	// ErrPlaylistNotFound is returned when a playlist id does not exist.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrNotPlaylistOwner is returned when a user mutates a playlist they do not own.
	ErrNotPlaylistOwner = errors.New("playlist belongs to another user")

	// ErrInvalidCatalogEntry is returned when a seeded track lacks a title.
	ErrInvalidCatalogEntry = errors.New("invalid catalog entry")
)

// CurationErrorCode defines error codes for favorites and playlists.
// Format: CUR-XXYYYY where XX is category and YYYY is specific error.
type CurationErrorCode string

const (
	ErrCodeTrackNotFound       CurationErrorCode = "CUR-010001"
	ErrCodePlaylistNotFound    CurationErrorCode = "CUR-020001"
	ErrCodeNotPlaylistOwner    CurationErrorCode = "CUR-030001"
	ErrCodeInvalidCuration     CurationErrorCode = "CUR-040001"
	ErrCodeInvalidCatalogEntry CurationErrorCode = "CUR-040002"
)

// CurationError represents a favorites or playlist error with code and message.
type CurationError struct {
	Code    CurationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CurationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CurationError) Unwrap() error {
	return e.Err
}

// NewCurationError creates a new CurationError with the given code and message.
func NewCurationError(code CurationErrorCode, message string, err error) *CurationError {
	return &CurationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewTrackNotFoundError returns the error for an unknown track id.
func NewTrackNotFoundError() *CurationError {
	return NewCurationError(ErrCodeTrackNotFound, "track not found", ErrTrackNotFound)
}

// NewPlaylistNotFoundError returns the error for an unknown playlist id.
func NewPlaylistNotFoundError() *CurationError {
	return NewCurationError(ErrCodePlaylistNotFound, "playlist not found", ErrPlaylistNotFound)
}
