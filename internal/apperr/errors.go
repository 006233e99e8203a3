package apperr

// ValidationError marks input the caller can correct, such as a transcript
// outside the accepted word range or a malformed request body.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// RubricError marks a rubric that cannot be scored against: empty criteria,
// weights that do not sum to 1.0, or word bounds out of order. Rubrics are
// validated when the engine is built, so hitting one mid-request means the
// service is misconfigured.
type RubricError struct {
	Message string
	Err     error
}

func (e *RubricError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RubricError) Unwrap() error {
	return e.Err
}

func NewRubric(msg string) *RubricError {
	return &RubricError{Message: msg}
}

func NewRubricWrap(msg string, err error) *RubricError {
	return &RubricError{Message: msg, Err: err}
}

// UnavailableError marks a dependency that could not serve a request, such
// as the embedding backend timing out. Callers may retry or fall back.
type UnavailableError struct {
	Message string
	Err     error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func NewUnavailable(msg string) *UnavailableError {
	return &UnavailableError{Message: msg}
}

func NewUnavailableWrap(msg string, err error) *UnavailableError {
	return &UnavailableError{Message: msg, Err: err}
}
