package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/escrow"
	"github.com/openmarkets/goapi/service/query"
)

type escrowRepoImpl struct {
	q query.Mongo
}

func NewEscrowRepo(q query.Mongo) escrow.Repo {
	return &escrowRepoImpl{q}
}

func (im *escrowRepoImpl) FindOne(ctx ctx.Ctx, listingId domain.ListingId, offeror domain.Address) (*escrow.Entry, error) {
	res := &escrow.Entry{}
	qry := bson.M{"listingId": listingId, "offeror": offeror.ToLowerStr()}
	err := im.q.FindOne(ctx, domain.TableEscrows, qry, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"offeror":   offeror,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *escrowRepoImpl) FindByListing(ctx ctx.Ctx, listingId domain.ListingId) ([]*escrow.Entry, error) {
	res := []*escrow.Entry{}
	if err := im.q.Search(ctx, domain.TableEscrows, 0, 0, "createdAt", bson.M{"listingId": listingId}, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *escrowRepoImpl) Create(ctx ctx.Ctx, entry *escrow.Entry) error {
	entry.Offeror = entry.Offeror.ToLower()
	entry.Currency = entry.Currency.ToLower()
	if err := im.q.Insert(ctx, domain.TableEscrows, entry); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": entry.ListingId,
			"offeror":   entry.Offeror,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *escrowRepoImpl) Remove(ctx ctx.Ctx, listingId domain.ListingId, offeror domain.Address) error {
	selector := bson.M{"listingId": listingId, "offeror": offeror.ToLowerStr()}
	if err := im.q.Remove(ctx, domain.TableEscrows, selector); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"offeror":   offeror,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}

// SumHeld totals amounts in Go since the amounts are stored as decimal
// strings to keep arbitrary precision.
func (im *escrowRepoImpl) SumHeld(ctx ctx.Ctx, currency domain.Address) (*big.Int, error) {
	entries := []*escrow.Entry{}
	if err := im.q.Search(ctx, domain.TableEscrows, 0, 0, "", bson.M{"currency": currency.ToLowerStr()}, &entries); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"currency": currency,
		}).Error("q.Search failed")
		return nil, err
	}

	sum := new(big.Int)
	for _, e := range entries {
		amount, err := e.AmountInt()
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": e.ListingId,
				"offeror":   e.Offeror,
			}).Error("malformed escrow amount")
			return nil, err
		}
		sum.Add(sum, amount)
	}
	return sum, nil
}
