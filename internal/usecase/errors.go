package usecase

// Kind classifies a service failure so the HTTP layer can pick a status
// code without matching on message strings.
type Kind int

const (
	KindValidation Kind = iota + 1 // 400
	KindUnauthorized               // 401
	KindForbidden                  // 403
	KindNotFound                   // 404
	KindConflict                   // 409
)

// Error is a client-facing service failure. Anything that is not an *Error
// is treated as an internal failure: logged in full, surfaced generically.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func ErrValidation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func ErrForbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func ErrNotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func ErrConflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}
