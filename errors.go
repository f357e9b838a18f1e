package stockledger

import "errors"

// Validation errors: the operation is rejected and the ledger is unchanged.
var (
	ErrInvalidID        = errors.New("invalid item id")
	ErrDuplicateID      = errors.New("item id already in use")
	ErrDuplicateName    = errors.New("an item with that exact name already exists")
	ErrEmptyName        = errors.New("item name cannot be blank")
	ErrInvalidName      = errors.New("item name cannot contain line breaks")
	ErrInvalidCategory  = errors.New("unknown category")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Sale errors.
var (
	ErrOutOfStock           = errors.New("item is out of stock")
	ErrInsufficientQuantity = errors.New("not enough stock to cover the sale")
	ErrInvalidQuantity      = errors.New("sale quantity must be positive")
	ErrInvalidPrice         = errors.New("unit price cannot be negative")
)

// ErrNotFound is returned when a lookup by id or name misses.
var ErrNotFound = errors.New("item not found")
