package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/trade"
	"github.com/openmarkets/goapi/service/query"
)

type offerRepoImpl struct {
	q query.Mongo
}

func NewOfferRepo(q query.Mongo) trade.OfferRepo {
	return &offerRepoImpl{q}
}

func (im *offerRepoImpl) makeQuery(opts ...trade.OfferFindAllOptionsFunc) (bson.M, error) {
	options, err := trade.GetOfferFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.ListingId != nil {
		query["listingId"] = *options.ListingId
	}

	if options.Offeror != nil {
		query["offeror"] = options.Offeror.ToLower()
	}

	return query, nil
}

func (im *offerRepoImpl) FindOne(ctx ctx.Ctx, listingId domain.ListingId, offeror domain.Address) (*trade.Offer, error) {
	res := &trade.Offer{}
	qry := bson.M{"listingId": listingId, "offeror": offeror.ToLowerStr()}
	err := im.q.FindOne(ctx, domain.TableOffers, qry, res)
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

func (im *offerRepoImpl) FindAll(ctx ctx.Ctx, opts ...trade.OfferFindAllOptionsFunc) ([]*trade.Offer, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithField("err", err).Error("im.makeQuery failed")
		return nil, err
	}

	options, err := trade.GetOfferFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*trade.Offer{}
	if err := im.q.Search(ctx, domain.TableOffers, offset, limit, "createdAt", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *offerRepoImpl) Upsert(ctx ctx.Ctx, offer *trade.Offer) error {
	offer.Offeror = offer.Offeror.ToLower()
	offer.Currency = offer.Currency.ToLower()
	selector := bson.M{"listingId": offer.ListingId, "offeror": offer.Offeror}
	if err := im.q.Upsert(ctx, domain.TableOffers, selector, offer); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": offer.ListingId,
			"offeror":   offer.Offeror,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *offerRepoImpl) Remove(ctx ctx.Ctx, listingId domain.ListingId, offeror domain.Address) error {
	selector := bson.M{"listingId": listingId, "offeror": offeror.ToLowerStr()}
	if err := im.q.Remove(ctx, domain.TableOffers, selector); err != nil {
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
