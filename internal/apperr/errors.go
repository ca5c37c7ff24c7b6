package apperr

// ParseError means the token sequence matched no grammar rule, or was
// empty. It is terminal for that input: no command is produced.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewParse(msg string) *ParseError {
	return &ParseError{Message: msg}
}

// DomainError means a business rule was violated: insufficient tickets,
// a forbidden status transition, an insufficient payment, a missing
// record addressed by the user.
type DomainError struct {
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewDomain(msg string) *DomainError {
	return &DomainError{Message: msg}
}

// RepositoryError wraps a failure from the storage boundary. The
// executor surfaces it as a generic operation-failed message and never
// retries.
type RepositoryError struct {
	Message string
	Err     error
}

func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func NewRepositoryWrap(msg string, err error) *RepositoryError {
	return &RepositoryError{Message: msg, Err: err}
}
