package domain

import (
	"errors"
	"fmt"
)

var (
	ErrExchangeInfo             = errors.New("exchange info unavailable")
	ErrAccountNotFound          = errors.New("account not found")
	ErrKeyDerivation            = errors.New("signing key derivation failed")
	ErrAuthRejected             = errors.New("api key request rejected")
	ErrSequenceAllocationFailed = errors.New("storage id allocation failed")
	ErrAddressComputationEmpty  = errors.New("counterfactual token address is empty")
	ErrFeeUnavailable           = errors.New("fee quote unavailable")
	ErrFeeRequestRejected       = errors.New("fee request rejected")
	ErrMintRejected             = errors.New("mint rejected")
	ErrTransport                = errors.New("exchange transport failure")
	ErrInvalidContentID         = errors.New("invalid content id")
)

// MintRejectedError carries the exchange's status code and message verbatim.
type MintRejectedError struct {
	StatusCode int
	Message    string
}

func (e *MintRejectedError) Error() string {
	return fmt.Sprintf("%s: code=%d message=%s", ErrMintRejected, e.StatusCode, e.Message)
}

func (e *MintRejectedError) Is(target error) bool {
	return target == ErrMintRejected
}
