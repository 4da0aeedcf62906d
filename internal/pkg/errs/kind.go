package errs

import "errors"

// Kind discriminates the error taxonomy.
type Kind int

const (
	// Unknown is the zero Kind and is never attached to a valid *Error.
	Unknown Kind = iota

	InvalidInput
	NotFound
	Conflict
	Unauthorized
	Unprocessable

	// Internal fallback kinds, one per family of use cases.
	CreateFailed
	GetFailed
	ListFailed
	UpdateFailed
	LoginFailed
)

// Sentinel errors, one per Kind.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUnprocessable = errors.New("unprocessable")
	ErrCreateFailed  = errors.New("create failed")
	ErrGetFailed     = errors.New("get failed")
	ErrListFailed    = errors.New("list failed")
	ErrUpdateFailed  = errors.New("update failed")
	ErrLoginFailed   = errors.New("login failed")
)

type kindInfo struct {
	name     string
	sentinel error
	internal bool
}

func getKindInfo() map[Kind]kindInfo {
	//nolint:exhaustive // Unknown has no info on purpose
	return map[Kind]kindInfo{
		InvalidInput:  {name: "InvalidInput", sentinel: ErrInvalidInput},
		NotFound:      {name: "NotFound", sentinel: ErrNotFound},
		Conflict:      {name: "Conflict", sentinel: ErrConflict},
		Unauthorized:  {name: "Unauthorized", sentinel: ErrUnauthorized},
		Unprocessable: {name: "Unprocessable", sentinel: ErrUnprocessable},
		CreateFailed:  {name: "CreateFailed", sentinel: ErrCreateFailed, internal: true},
		GetFailed:     {name: "GetFailed", sentinel: ErrGetFailed, internal: true},
		ListFailed:    {name: "ListFailed", sentinel: ErrListFailed, internal: true},
		UpdateFailed:  {name: "UpdateFailed", sentinel: ErrUpdateFailed, internal: true},
		LoginFailed:   {name: "LoginFailed", sentinel: ErrLoginFailed, internal: true},
	}
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		InvalidInput,
		NotFound,
		Conflict,
		Unauthorized,
		Unprocessable,
		CreateFailed,
		GetFailed,
		ListFailed,
		UpdateFailed,
		LoginFailed,
	}
}

// String returns the kind name, or "Unknown" for values outside the taxonomy.
func (k Kind) String() string {
	if info, ok := getKindInfo()[k]; ok {
		return info.name
	}
	return "Unknown"
}

// IsValid reports whether k belongs to the taxonomy.
func (k Kind) IsValid() bool {
	_, ok := getKindInfo()[k]
	return ok
}

// IsInternal reports whether k is one of the fallback kinds used for unexpected faults.
func (k Kind) IsInternal() bool {
	return getKindInfo()[k].internal
}

// Sentinel returns the sentinel error for k, or nil for an invalid kind.
func (k Kind) Sentinel() error {
	return getKindInfo()[k].sentinel
}
