package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidCurrency     = errors.New("invalid currency")

	// validation errors, rejected before any state change
	ErrZeroQuantity        = errors.New("invalid listing quantity")
	ErrReserveExceedBuyout = errors.New("reserve price exceeds buyout price")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrStartTooLate        = errors.New("start time passed the allowed buffer")

	// authorization errors
	ErrNotListingOwner = errors.New("caller is not the listing owner")
	ErrMissingRole     = errors.New("caller lacks the required role")

	// timing errors
	ErrListingNotOpen  = errors.New("listing is not open")
	ErrListingStarted  = errors.New("listing already started")
	ErrOfferExpired    = errors.New("offer expired")
	ErrAuctionNotEnded = errors.New("auction has not ended yet")

	// economic errors
	ErrBidTooLow            = errors.New("bid too low")
	ErrInsufficientBalance  = errors.New("insufficient balance or approval")
	ErrInsufficientQuantity = errors.New("insufficient listed quantity")
	ErrValueMismatch        = errors.New("attached value does not match required amount")

	// double-action errors
	ErrAuctionClosed = errors.New("auction already closed")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
