package store

import "errors"

var (
	ErrNotFound          = errors.New("entity not found")
	ErrOfferNotFound     = errors.New("offer not found on request")
	ErrEditNotAllowed    = errors.New("request is no longer editable")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrInvalidOption     = errors.New("invalid option selection")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrDuplicate         = errors.New("duplicate request")
	ErrEmailTaken        = errors.New("email already registered")
)
