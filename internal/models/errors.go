package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Domain errors for the balance derivation engine.
var (
	ErrInsufficientBalance       = errors.New("the expense exceeds the current balance")
	ErrExpenseAmountNotPositive  = errors.New("expense amounts must be larger than zero")
	ErrIncomeAmountNotPositive   = errors.New("income amounts must be larger than zero")
	ErrIncomeAmountNegative      = errors.New("income amounts must not be negative")
	ErrEmailNotUnique            = errors.New("this email address is already registered")
	ErrUsernameNotUnique         = errors.New("this username is already taken")
	ErrCategoryNameNotUnique     = errors.New("the category name must be unique")
	ErrProfileAlreadyExists      = errors.New("a profile already exists for this user")
	ErrIncomeRecordAlreadyExists = errors.New("an income record already exists for this user")
)
