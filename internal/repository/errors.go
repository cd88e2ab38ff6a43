package repository

import "errors"

var (
	// ErrNotFound is the base error for point lookups with zero rows.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEntry covers unique-constraint violations.
	ErrDuplicateEntry = errors.New("duplicate entry")

	ErrUserNotFound    = errors.New("User does not exist.")
	ErrCompanyNotFound = errors.New("Company not found.")
	ErrJobNotFound     = errors.New("Job not found.")

	ErrUserExists    = errors.New("User already exists.")
	ErrCompanyExists = errors.New("Company already exists.")

	// ErrInvalidPassword is distinguished from ErrUserNotFound internally;
	// the HTTP layer collapses both into one generic response.
	ErrInvalidPassword = errors.New("Invalid Password")
	ErrNotAdmin        = errors.New("user is not an admin")
)
