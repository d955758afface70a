package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrItemNotFound        = errors.New("item not found")
	ErrItemAlreadyExists   = errors.New("item already exists")
	ErrAccessDenied        = errors.New("access denied")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	ErrValidationNoItemID       = errors.New("no item ID was given")
	ErrValidationEmptyItemName  = errors.New("item name is empty")
	ErrValidationNegativePrice  = errors.New("item price is negative")
	ErrValidationNoAttachmentID = errors.New("no attachment ID was given")
	ErrValidationNoFileContent  = errors.New("no file content was given")
)
