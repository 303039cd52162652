package event

import (
	"time"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
)

// Type is the observation kind consumed by external indexers.
type Type string

const (
	TypeListingCreated Type = "listing-created"
	TypeListingUpdated Type = "listing-updated"
	TypeNewOffer       Type = "new-offer"
	TypeSale           Type = "sale"
	TypeAuctionClosed  Type = "auction-closed"
)

type Event struct {
	Type          Type             `json:"type" bson:"type"`
	ListingId     domain.ListingId `json:"listingId" bson:"listingId"`
	AssetContract domain.Address   `json:"assetContract" bson:"assetContract"`
	TokenId       domain.TokenId   `json:"tokenId" bson:"tokenId"`
	Account       domain.Address   `json:"account" bson:"account"`
	Quantity      int64            `json:"quantity" bson:"quantity"`
	PricePerToken string           `json:"pricePerToken" bson:"pricePerToken"`
	TotalPrice    string           `json:"totalPrice" bson:"totalPrice"`
	Currency      domain.Address   `json:"currency" bson:"currency"`
	Time          time.Time        `json:"time" bson:"time"`
}

type FindAllOptions struct {
	ListingId *domain.ListingId
	Type      *Type
	Offset    *int32
	Limit     *int32
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

func WithListingId(listingId domain.ListingId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ListingId = &listingId
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
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

type Repo interface {
	Insert(c ctx.Ctx, ev *Event) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}
