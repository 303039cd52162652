package escrow

import (
	"math/big"
	"time"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
)

type Kind string

const (
	KindOffer Kind = "offer"
	KindBid   Kind = "bid"
)

// Entry is one unit of currency custody held by the marketplace. Exactly
// one exists per unsettled offer or bid, and it is released or consumed
// exactly once.
type Entry struct {
	ListingId domain.ListingId `bson:"listingId"`
	Offeror   domain.Address   `bson:"offeror"`
	Currency  domain.Address   `bson:"currency"`
	Amount    string           `bson:"amount"`
	Kind      Kind             `bson:"kind"`
	CreatedAt time.Time        `bson:"createdAt"`
}

func (e *Entry) AmountInt() (*big.Int, error) {
	return domain.ParseAmount(e.Amount)
}

// Credit is a refund whose direct push failed; the payee withdraws it
// later. Keeping it a ledger row means a hostile payee can never block a
// new bid.
type Credit struct {
	Payee     domain.Address `bson:"payee"`
	Currency  domain.Address `bson:"currency"`
	Amount    string         `bson:"amount"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

type Repo interface {
	FindOne(c ctx.Ctx, listingId domain.ListingId, offeror domain.Address) (*Entry, error)
	FindByListing(c ctx.Ctx, listingId domain.ListingId) ([]*Entry, error)
	Create(c ctx.Ctx, entry *Entry) error
	Remove(c ctx.Ctx, listingId domain.ListingId, offeror domain.Address) error
	// SumHeld totals the unsettled entries of a currency.
	SumHeld(c ctx.Ctx, currency domain.Address) (*big.Int, error)
}

type CreditRepo interface {
	FindOne(c ctx.Ctx, payee, currency domain.Address) (*Credit, error)
	// Add increases the payee's credit, creating the row when absent.
	Add(c ctx.Ctx, payee, currency domain.Address, amount *big.Int) error
	Remove(c ctx.Ctx, payee, currency domain.Address) error
}

type UseCase interface {
	// WithdrawCredit pays out the caller's accumulated credit in currency
	// and clears it. Returns the amount paid.
	WithdrawCredit(c ctx.Ctx, caller, currency domain.Address) (string, error)
	GetCredit(c ctx.Ctx, payee, currency domain.Address) (*Credit, error)
	// GetHeld returns the total currency held by unsettled entries.
	GetHeld(c ctx.Ctx, currency domain.Address) (string, error)
}
