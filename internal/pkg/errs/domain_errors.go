package errs

// Taxonomy markers. Use cases mark their errors with one of these so the
// HTTP layer can classify failures without knowing every concrete error.
var (
	ErrNotFound        = New("not found")
	ErrNotAvailable    = New("not available")
	ErrBadRequestParam = New("bad request parameter")
	ErrConflict        = New("conflict")
	ErrAlreadyExists   = New("already exists")

	ErrDatabaseOperationFailed = New("database operation failed")
)
