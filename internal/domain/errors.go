package domain

import "errors"

var (
	// ErrInvalidBudget rejects zero or negative budgets before allocation.
	ErrInvalidBudget = errors.New("budget must be positive")

	// ErrUnknownPurpose rejects purposes with no configured profile.
	ErrUnknownPurpose = errors.New("unknown build purpose")

	// ErrInsufficientBudget means the budget is below the profile's minimum
	// viable build; allocation would produce degenerate sub-budgets.
	ErrInsufficientBudget = errors.New("budget below minimum for purpose")

	// ErrInsufficientOptions means the catalog had no usable candidate for
	// any required category.
	ErrInsufficientOptions = errors.New("no compatible components available")
)
