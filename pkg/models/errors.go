package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrUsernameEmpty      = errors.New("the username must not be empty")
	ErrUsernameNotUnique  = errors.New("the username is already in use")
	ErrPasswordEmpty      = errors.New("the password must not be empty")
	ErrEmailInvalid       = errors.New("the email address is not valid")
	ErrInvalidCredentials = errors.New("the username or password is not correct")
)

// Category errors
var (
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the user")
	ErrCategoryKindInvalid   = errors.New("the category kind must be either income or expense")
	ErrCategoryColorInvalid  = errors.New("the category color must be a hex color formatted as #rrggbb")
	ErrCategoryKindImmutable = errors.New("the kind of a category cannot be changed while transactions reference it")
)

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be larger than zero")
	ErrTransactionDateMissing       = errors.New("the transaction date must be set")
	ErrTransactionCategoryInvalid   = errors.New("the category of the transaction does not exist")
)

// Savings goal errors
var (
	ErrGoalNameEmpty = errors.New("the savings goal name must not be empty")
)
