// services/errors.go
package services

import "errors"

// Business outcomes surfaced to handlers. Storage failures are returned
// as-is (wrapped gorm errors) and mapped to a generic 500 at the
// boundary; nothing in this package panics on a failed action.
var (
	ErrInsufficientBalance = errors.New("not enough matches")
	ErrNotFound            = errors.New("record not found")
	ErrSelfTarget          = errors.New("cannot target your own wallet")
	ErrNegligibleValue     = errors.New("point value too low to steal")
	ErrCooldown            = errors.New("action is on cooldown")
	ErrNoActiveSeason      = errors.New("no active season")
)
