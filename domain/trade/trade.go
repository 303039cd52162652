package trade

import (
	"math/big"
	"time"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
)

// Offer is a buyer's outstanding offer on a direct listing. At most one
// exists per (listing, offeror); a re-offer overwrites the previous one.
type Offer struct {
	ListingId      domain.ListingId `json:"listingId" bson:"listingId"`
	Offeror        domain.Address   `json:"offeror" bson:"offeror"`
	Quantity       int64            `json:"quantityWanted" bson:"quantityWanted"`
	Currency       domain.Address   `json:"currency" bson:"currency"`
	PricePerToken  string           `json:"pricePerToken" bson:"pricePerToken"`
	ExpirationTime time.Time        `json:"expirationTime" bson:"expirationTime"`
	CreatedAt      time.Time        `json:"createdAt" bson:"createdAt"`
}

// Total is quantity x pricePerToken.
func (o *Offer) Total() (*big.Int, error) {
	price, err := domain.ParseAmount(o.PricePerToken)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Mul(price, big.NewInt(o.Quantity)), nil
}

// WinningBid is the single incumbent bid of an auction listing.
type WinningBid struct {
	ListingId      domain.ListingId `json:"listingId" bson:"listingId"`
	Offeror        domain.Address   `json:"offeror" bson:"offeror"`
	Quantity       int64            `json:"quantityWanted" bson:"quantityWanted"`
	Currency       domain.Address   `json:"currency" bson:"currency"`
	PricePerToken  string           `json:"pricePerToken" bson:"pricePerToken"`
	ExpirationTime time.Time        `json:"expirationTime" bson:"expirationTime"`
	CreatedAt      time.Time        `json:"createdAt" bson:"createdAt"`
}

func (b *WinningBid) Total() (*big.Int, error) {
	price, err := domain.ParseAmount(b.PricePerToken)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Mul(price, big.NewInt(b.Quantity)), nil
}

// OfferParams is the caller side of UseCase.Offer. AttachedValue is the
// native value sent along with the call; it must be "0" for token
// currencies and exactly quantity x pricePerToken for the native currency.
type OfferParams struct {
	ListingId      domain.ListingId `json:"listingId" param:"listingId" validate:"required"`
	Quantity       int64            `json:"quantityWanted" validate:"required,gt=0"`
	Currency       domain.Address   `json:"currency" validate:"required"`
	PricePerToken  string           `json:"pricePerToken" validate:"required"`
	ExpirationTime int64            `json:"expirationTime"`
	AttachedValue  string           `json:"attachedValue"`
}

type OfferFindAllOptions struct {
	ListingId *domain.ListingId
	Offeror   *domain.Address
	Offset    *int32
	Limit     *int32
}

type OfferFindAllOptionsFunc func(*OfferFindAllOptions) error

func GetOfferFindAllOptions(opts ...OfferFindAllOptionsFunc) (OfferFindAllOptions, error) {
	res := OfferFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithListingId(listingId domain.ListingId) OfferFindAllOptionsFunc {
	return func(options *OfferFindAllOptions) error {
		options.ListingId = &listingId
		return nil
	}
}

func WithOfferor(offeror domain.Address) OfferFindAllOptionsFunc {
	return func(options *OfferFindAllOptions) error {
		options.Offeror = &offeror
		return nil
	}
}

func WithPagination(offset, limit int32) OfferFindAllOptionsFunc {
	return func(options *OfferFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type OfferRepo interface {
	FindOne(c ctx.Ctx, listingId domain.ListingId, offeror domain.Address) (*Offer, error)
	FindAll(c ctx.Ctx, opts ...OfferFindAllOptionsFunc) ([]*Offer, error)
	Upsert(c ctx.Ctx, offer *Offer) error
	Remove(c ctx.Ctx, listingId domain.ListingId, offeror domain.Address) error
}

type WinningBidRepo interface {
	FindOne(c ctx.Ctx, listingId domain.ListingId) (*WinningBid, error)
	Upsert(c ctx.Ctx, bid *WinningBid) error
	Remove(c ctx.Ctx, listingId domain.ListingId) error
}

type UseCase interface {
	// Offer escrows funds and records an offer (direct listing) or a bid
	// (auction listing). An auction bid at or above the buyout price closes
	// the auction in the bidder's favor inline.
	Offer(c ctx.Ctx, caller domain.Address, params *OfferParams) error
	// AcceptOffer settles a direct listing against the stored offer of
	// offeror. Caller must be the listing owner.
	AcceptOffer(c ctx.Ctx, listingId domain.ListingId, caller, offeror domain.Address, currency domain.Address, pricePerToken string) error
	// CancelOffer removes the caller's outstanding offer on a direct
	// listing and refunds the escrowed amount.
	CancelOffer(c ctx.Ctx, listingId domain.ListingId, caller domain.Address) error
	// CloseAuction settles an ended auction, paying out to recipient.
	CloseAuction(c ctx.Ctx, listingId domain.ListingId, caller, recipient domain.Address) error
	GetWinningBid(c ctx.Ctx, listingId domain.ListingId) (*WinningBid, error)
	GetOffers(c ctx.Ctx, listingId domain.ListingId) ([]*Offer, error)
}
