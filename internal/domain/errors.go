package domain

import "errors"

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrStoreUnavailable = errors.New("record store unavailable")
)
