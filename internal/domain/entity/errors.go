package entity

import "errors"

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrInvalidCriteria     = errors.New("invalid filter criteria")
	ErrInvalidAmount       = errors.New("amount must not be negative")
	ErrWalletDisconnected  = errors.New("wallet is not connected")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrDebitDeclined       = errors.New("debit was declined")
	ErrPurchaseInFlight    = errors.New("another purchase is already in progress")
	ErrNoPendingPurchase   = errors.New("no purchase awaiting confirmation")
)
