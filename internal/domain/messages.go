package domain

// Shared validation messages used by entity Validate methods and request DTOs.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)
