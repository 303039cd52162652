package listing

import (
	"math/big"
	"time"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	"github.com/openmarkets/goapi/domain/trade"
)

// Type of sale a listing runs.
type Type int32

const (
	TypeDirect  Type = 0
	TypeAuction Type = 1
)

func (t Type) IsValid() bool {
	return t == TypeDirect || t == TypeAuction
}

// Status is derived from the clock at read time; only auctions carry an
// explicit closed marker, set by settlement.
type Status string

const (
	StatusPending Status = "pending"
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
)

// Listing field order matters for ABI-compatible consumers.
type Listing struct {
	Id                   domain.ListingId `json:"listingId" bson:"listingId"`
	Owner                domain.Address   `json:"owner" bson:"owner"`
	AssetContract        domain.Address   `json:"assetContract" bson:"assetContract"`
	TokenId              domain.TokenId   `json:"tokenId" bson:"tokenId"`
	StartTime            time.Time        `json:"startTime" bson:"startTime"`
	EndTime              time.Time        `json:"endTime" bson:"endTime"`
	Quantity             int64            `json:"quantity" bson:"quantity"`
	Currency             domain.Address   `json:"currency" bson:"currency"`
	ReservePricePerToken string           `json:"reservePricePerToken" bson:"reservePricePerToken"`
	BuyoutPricePerToken  string           `json:"buyoutPricePerToken" bson:"buyoutPricePerToken"`
	AssetKind            asset.Kind       `json:"assetKind" bson:"assetKind"`
	ListingType          Type             `json:"listingType" bson:"listingType"`

	ClosedAt  *time.Time `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) AssetRef() asset.Ref {
	return asset.Ref{
		Contract: l.AssetContract,
		TokenId:  l.TokenId,
		Kind:     l.AssetKind,
	}
}

// StatusAt derives the lifecycle state at the given instant.
func (l *Listing) StatusAt(now time.Time) Status {
	if l.ClosedAt != nil || l.Quantity == 0 || !now.Before(l.EndTime) {
		return StatusClosed
	}
	if now.Before(l.StartTime) {
		return StatusPending
	}
	return StatusOpen
}

func (l *Listing) IsOpenAt(now time.Time) bool {
	return l.StatusAt(now) == StatusOpen
}

// StartedAt reports whether the listing's window has begun, independent of
// bid activity.
func (l *Listing) StartedAt(now time.Time) bool {
	return !now.Before(l.StartTime)
}

func (l *Listing) ReservePrice() (*big.Int, error) {
	return domain.ParseAmount(l.ReservePricePerToken)
}

func (l *Listing) BuyoutPrice() (*big.Int, error) {
	return domain.ParseAmount(l.BuyoutPricePerToken)
}

// Params is the caller-supplied shape for create and update.
type Params struct {
	AssetContract        domain.Address `json:"assetContract" validate:"required"`
	TokenId              domain.TokenId `json:"tokenId"`
	StartTime            int64          `json:"startTime" validate:"required"`
	SecondsUntilEndTime  int64          `json:"secondsUntilEndTime" validate:"required,gt=0"`
	QuantityToList       int64          `json:"quantityToList" validate:"required,gt=0"`
	CurrencyToAccept     domain.Address `json:"currencyToAccept" validate:"required"`
	ReservePricePerToken string         `json:"reservePricePerToken"`
	BuyoutPricePerToken  string         `json:"buyoutPricePerToken"`
	ListingType          Type           `json:"listingType"`
}

// Patchable updates a listing in place; nil fields are left untouched.
type Patchable struct {
	StartTime            *time.Time      `bson:"startTime,omitempty"`
	EndTime              *time.Time      `bson:"endTime,omitempty"`
	Quantity             *int64          `bson:"quantity,omitempty"`
	Currency             *domain.Address `bson:"currency,omitempty"`
	ReservePricePerToken *string         `bson:"reservePricePerToken,omitempty"`
	BuyoutPricePerToken  *string         `bson:"buyoutPricePerToken,omitempty"`
	ClosedAt             *time.Time      `bson:"closedAt,omitempty"`
	UpdatedAt            *time.Time      `bson:"updatedAt,omitempty"`
}

// Detail is a listing plus its live trade state. Display prices are the
// per-token prices scaled by the currency's decimals.
type Detail struct {
	Listing
	Status              Status            `json:"status"`
	WinningBid          *trade.WinningBid `json:"winningBid,omitempty"`
	Offers              []*trade.Offer    `json:"offers,omitempty"`
	ReservePriceDisplay string            `json:"reservePriceDisplay,omitempty"`
	BuyoutPriceDisplay  string            `json:"buyoutPriceDisplay,omitempty"`
}

type FindAllOptions struct {
	Owner         *domain.Address
	AssetContract *domain.Address
	TokenId       *domain.TokenId
	ListingType   *Type
	OpenAt        *time.Time
	Offset        *int32
	Limit         *int32
	SortBy        *string
	SortDir       *domain.SortDir
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = owner.ToLowerPtr()
		return nil
	}
}

func WithAssetContract(contract domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AssetContract = contract.ToLowerPtr()
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenId = &tokenId
		return nil
	}
}

func WithListingType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ListingType = &t
		return nil
	}
}

// WithOpenAt keeps only listings open at the given instant.
func WithOpenAt(now time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.OpenAt = &now
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		options.SortDir = &sortDir
		return nil
	}
}

type Repo interface {
	FindOne(c ctx.Ctx, id domain.ListingId) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Create(c ctx.Ctx, l *Listing) error
	Patch(c ctx.Ctx, id domain.ListingId, patchable Patchable) error
	// NextId hands out monotonically increasing listing ids.
	NextId(c ctx.Ctx) (domain.ListingId, error)
}

type UseCase interface {
	CreateListing(c ctx.Ctx, owner domain.Address, params *Params) (*Listing, error)
	UpdateListing(c ctx.Ctx, id domain.ListingId, caller domain.Address, params *Params) (*Listing, error)
	GetListing(c ctx.Ctx, id domain.ListingId) (*Detail, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Detail, error)
}
