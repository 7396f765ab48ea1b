package model

import (
	"errors"
	"fmt"
)

// Package model contains domain models/data structures shared by the store,
// the derivation pipeline and the HTTP layer. No business logic here.

var (
	// ErrNotFound is returned when a mutation references an id absent from the store.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when input is rejected before it reaches the store.
	ErrValidation = errors.New("validation failed")
	// ErrInternalDerivation is returned when the visible list cannot be derived.
	// Callers keep the previously derived list when they see it.
	ErrInternalDerivation = errors.New("derivation failed")
	// ErrForbidden is returned when the current user lacks a capability.
	ErrForbidden = errors.New("forbidden")
)

// Invalidf returns an error wrapping ErrValidation with a formatted reason.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Category is one of the seven fixed document kinds.
type Category string

const (
	CategoryPDF         Category = "pdf"
	CategoryImage       Category = "image"
	CategoryVideo       Category = "video"
	CategoryAudio       Category = "audio"
	CategorySpreadsheet Category = "spreadsheet"
	CategoryText        Category = "text"
	CategoryOther       Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPDF,
	CategoryImage,
	CategoryVideo,
	CategoryAudio,
	CategorySpreadsheet,
	CategoryText,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}
