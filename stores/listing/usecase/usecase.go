package usecase

import (
	"math/big"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	pricefomatter "github.com/openmarkets/goapi/base/price_fomatter"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	"github.com/openmarkets/goapi/domain/event"
	"github.com/openmarkets/goapi/domain/listing"
	"github.com/openmarkets/goapi/domain/trade"
)

// defaultStartBuffer is how far in the past a start time may lie before it
// is rejected instead of clamped to now.
const defaultStartBuffer = time.Hour

type ListingUseCaseCfg struct {
	Repo           listing.Repo
	OfferRepo      trade.OfferRepo
	WinningBidRepo trade.WinningBidRepo
	EventRepo      event.Repo
	AssetAdapter   asset.Adapter
	AccessControl  domain.AccessControl
	PayTokenRepo   domain.PayTokenRepo
	PriceFormatter pricefomatter.PriceFormatter
	// Operator is the custody account auctioned assets are parked under.
	Operator    domain.Address
	StartBuffer time.Duration
	Now         func() time.Time
}

type impl struct {
	repo        listing.Repo
	offers      trade.OfferRepo
	winningBids trade.WinningBidRepo
	events      event.Repo
	assets      asset.Adapter
	access      domain.AccessControl
	paytokens   domain.PayTokenRepo
	formatter   pricefomatter.PriceFormatter
	operator    domain.Address
	startBuffer time.Duration
	now         func() time.Time
}

// New creates listing usecase
func New(cfg *ListingUseCaseCfg) listing.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	startBuffer := cfg.StartBuffer
	if startBuffer == 0 {
		startBuffer = defaultStartBuffer
	}
	return &impl{
		repo:        cfg.Repo,
		offers:      cfg.OfferRepo,
		winningBids: cfg.WinningBidRepo,
		events:      cfg.EventRepo,
		assets:      cfg.AssetAdapter,
		access:      cfg.AccessControl,
		paytokens:   cfg.PayTokenRepo,
		formatter:   cfg.PriceFormatter,
		operator:    cfg.Operator.ToLower(),
		startBuffer: startBuffer,
		now:         now,
	}
}

func (im *impl) CreateListing(c ctx.Ctx, owner domain.Address, params *listing.Params) (*listing.Listing, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"owner":         owner,
		"assetContract": params.AssetContract,
		"tokenId":       params.TokenId,
	})

	if !params.ListingType.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	if params.QuantityToList <= 0 || params.SecondsUntilEndTime <= 0 {
		return nil, domain.ErrZeroQuantity
	}

	if ok, err := im.access.HasRole(c, domain.RoleLister, owner); err != nil {
		c.WithField("err", err).Error("access.HasRole failed")
		return nil, err
	} else if !ok {
		return nil, domain.ErrMissingRole
	}
	if ok, err := im.access.HasRole(c, domain.RoleAsset, params.AssetContract); err != nil {
		c.WithField("err", err).Error("access.HasRole failed")
		return nil, err
	} else if !ok {
		return nil, domain.ErrMissingRole
	}

	kind, err := im.assets.KindOf(c, params.AssetContract)
	if err != nil {
		c.WithField("err", err).Error("assets.KindOf failed")
		return nil, err
	}

	quantity := safeQuantity(kind, params.QuantityToList)
	ref := asset.Ref{Contract: params.AssetContract.ToLower(), TokenId: params.TokenId, Kind: kind}

	if err := im.checkOwnership(c, ref, owner, quantity); err != nil {
		return nil, err
	}

	reserve, buyout, err := im.checkPrices(c, params)
	if err != nil {
		return nil, err
	}
	if buyout.Sign() > 0 && reserve.Cmp(buyout) > 0 {
		return nil, domain.ErrReserveExceedBuyout
	}

	if err := im.checkCurrency(c, params.CurrencyToAccept); err != nil {
		return nil, err
	}

	now := im.now()
	startTime, err := im.clampStartTime(now, params.StartTime)
	if err != nil {
		return nil, err
	}
	endTime := startTime.Add(time.Duration(params.SecondsUntilEndTime) * time.Second)

	id, err := im.repo.NextId(c)
	if err != nil {
		c.WithField("err", err).Error("repo.NextId failed")
		return nil, err
	}

	l := &listing.Listing{
		Id:                   id,
		Owner:                owner.ToLower(),
		AssetContract:        params.AssetContract.ToLower(),
		TokenId:              params.TokenId,
		StartTime:            startTime,
		EndTime:              endTime,
		Quantity:             quantity,
		Currency:             params.CurrencyToAccept.ToLower(),
		ReservePricePerToken: reserve.String(),
		BuyoutPricePerToken:  buyout.String(),
		AssetKind:            kind,
		ListingType:          params.ListingType,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// auctioned assets move into marketplace custody up front
	if l.ListingType == listing.TypeAuction {
		if err := im.assets.Transfer(c, ref, owner, im.operator, quantity); err != nil {
			c.WithField("err", err).Error("assets.Transfer failed")
			return nil, err
		}
	}

	if err := im.repo.Create(c, l); err != nil {
		c.WithField("err", err).Error("repo.Create failed")
		return nil, err
	}

	im.emit(c, event.TypeListingCreated, l, owner, quantity, l.ReservePricePerToken)
	return l, nil
}

func (im *impl) UpdateListing(c ctx.Ctx, id domain.ListingId, caller domain.Address, params *listing.Params) (*listing.Listing, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"listingId": id,
		"caller":    caller,
	})

	l, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if !l.Owner.Equals(caller) {
		return nil, domain.ErrNotListingOwner
	}

	now := im.now()
	if l.StatusAt(now) == listing.StatusClosed {
		return nil, domain.ErrListingNotOpen
	}

	// auction economics freeze once the window opens
	if l.ListingType == listing.TypeAuction && l.StartedAt(now) {
		return nil, domain.ErrListingStarted
	}

	reserve, buyout, err := im.checkPrices(c, params)
	if err != nil {
		return nil, err
	}
	if buyout.Sign() > 0 && reserve.Cmp(buyout) > 0 {
		return nil, domain.ErrReserveExceedBuyout
	}

	if err := im.checkCurrency(c, params.CurrencyToAccept); err != nil {
		return nil, err
	}

	quantity := safeQuantity(l.AssetKind, params.QuantityToList)
	if quantity <= 0 {
		return nil, domain.ErrZeroQuantity
	}

	patch := listing.Patchable{UpdatedAt: &now}

	if params.StartTime > 0 && !time.Unix(params.StartTime, 0).Equal(l.StartTime) {
		if l.StartedAt(now) {
			return nil, domain.ErrListingStarted
		}
		startTime, err := im.clampStartTime(now, params.StartTime)
		if err != nil {
			return nil, err
		}
		endTime := startTime.Add(time.Duration(params.SecondsUntilEndTime) * time.Second)
		patch.StartTime = &startTime
		patch.EndTime = &endTime
	}

	// auction custody follows the listed quantity
	if l.ListingType == listing.TypeAuction && quantity != l.Quantity {
		diff := quantity - l.Quantity
		if diff > 0 {
			if err := im.checkOwnership(c, l.AssetRef(), l.Owner, diff); err != nil {
				return nil, err
			}
			if err := im.assets.Transfer(c, l.AssetRef(), l.Owner, im.operator, diff); err != nil {
				c.WithField("err", err).Error("assets.Transfer failed")
				return nil, err
			}
		} else {
			if err := im.assets.Transfer(c, l.AssetRef(), im.operator, l.Owner, -diff); err != nil {
				c.WithField("err", err).Error("assets.Transfer failed")
				return nil, err
			}
		}
	}

	currency := params.CurrencyToAccept.ToLower()
	reserveStr := reserve.String()
	buyoutStr := buyout.String()
	patch.Quantity = &quantity
	patch.Currency = &currency
	patch.ReservePricePerToken = &reserveStr
	patch.BuyoutPricePerToken = &buyoutStr

	if err := im.repo.Patch(c, id, patch); err != nil {
		c.WithField("err", err).Error("repo.Patch failed")
		return nil, err
	}

	updated, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}

	im.emit(c, event.TypeListingUpdated, updated, caller, updated.Quantity, updated.ReservePricePerToken)
	return updated, nil
}

func (im *impl) GetListing(c ctx.Ctx, id domain.ListingId) (*listing.Detail, error) {
	l, err := im.repo.FindOne(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":       err,
				"listingId": id,
			}).Error("repo.FindOne failed")
		}
		return nil, err
	}
	return im.toDetail(c, l)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Detail, error) {
	listings, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	if len(listings) == 0 {
		return []*listing.Detail{}, nil
	}

	b := goroutines.NewBatch(10, goroutines.WithBatchSize(len(listings)))
	defer b.Close()
	for i := 0; i < len(listings); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			detail, err := im.toDetail(c, listings[idx])
			if err != nil {
				detail = &listing.Detail{
					Listing: *listings[idx],
					Status:  listings[idx].StatusAt(im.now()),
				}
			}
			return detail, nil
		})
	}
	b.QueueComplete()

	idx := 0
	details := make([]*listing.Detail, len(listings))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("get listing detail error result")
			continue
		}
		details[idx] = ret.Value().(*listing.Detail)
		idx++
	}
	return details, nil
}

func (im *impl) toDetail(c ctx.Ctx, l *listing.Listing) (*listing.Detail, error) {
	detail := &listing.Detail{
		Listing: *l,
		Status:  l.StatusAt(im.now()),
	}

	if l.ListingType == listing.TypeAuction {
		bid, err := im.winningBids.FindOne(c, l.Id)
		if err != nil && err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":       err,
				"listingId": l.Id,
			}).Error("winningBids.FindOne failed")
			return nil, err
		}
		detail.WinningBid = bid
	} else {
		offers, err := im.offers.FindAll(c, trade.WithListingId(l.Id))
		if err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"listingId": l.Id,
			}).Error("offers.FindAll failed")
			return nil, err
		}
		detail.Offers = offers
	}

	if im.formatter != nil {
		if d, err := im.formatter.GetDisplayPriceFromString(c, l.Currency, l.ReservePricePerToken); err == nil {
			detail.ReservePriceDisplay = d.String()
		} else {
			c.WithFields(log.Fields{
				"err":       err,
				"listingId": l.Id,
			}).Warn("formatter.GetDisplayPriceFromString failed")
		}
		if d, err := im.formatter.GetDisplayPriceFromString(c, l.Currency, l.BuyoutPricePerToken); err == nil {
			detail.BuyoutPriceDisplay = d.String()
		} else {
			c.WithFields(log.Fields{
				"err":       err,
				"listingId": l.Id,
			}).Warn("formatter.GetDisplayPriceFromString failed")
		}
	}
	return detail, nil
}

func (im *impl) checkOwnership(c ctx.Ctx, ref asset.Ref, owner domain.Address, quantity int64) error {
	if ok, err := im.assets.BalanceAvailable(c, ref, owner, quantity); err != nil {
		c.WithField("err", err).Error("assets.BalanceAvailable failed")
		return err
	} else if !ok {
		return domain.ErrInsufficientBalance
	}
	if ok, err := im.assets.IsApprovedForOperator(c, owner, im.operator); err != nil {
		c.WithField("err", err).Error("assets.IsApprovedForOperator failed")
		return err
	} else if !ok {
		return domain.ErrInsufficientBalance
	}
	return nil
}

func (im *impl) checkPrices(c ctx.Ctx, params *listing.Params) (reserve, buyout *big.Int, err error) {
	reserve, err = domain.ParseAmount(orZero(params.ReservePricePerToken))
	if err != nil {
		return nil, nil, err
	}
	buyout, err = domain.ParseAmount(orZero(params.BuyoutPricePerToken))
	if err != nil {
		return nil, nil, err
	}
	return reserve, buyout, nil
}

func (im *impl) checkCurrency(c ctx.Ctx, currency domain.Address) error {
	if currency.IsNative() {
		return nil
	}
	if _, err := im.paytokens.FindOne(c, currency); err == domain.ErrNotFound {
		return domain.ErrInvalidCurrency
	} else if err != nil {
		c.WithField("err", err).Error("paytokens.FindOne failed")
		return err
	}
	return nil
}

// clampStartTime lifts a slightly stale start time to now and rejects one
// older than the buffer.
func (im *impl) clampStartTime(now time.Time, startUnix int64) (time.Time, error) {
	startTime := time.Unix(startUnix, 0)
	if startTime.Before(now) {
		if now.Sub(startTime) >= im.startBuffer {
			return time.Time{}, domain.ErrStartTooLate
		}
		startTime = now
	}
	return startTime, nil
}

func (im *impl) emit(c ctx.Ctx, typ event.Type, l *listing.Listing, account domain.Address, quantity int64, pricePerToken string) {
	ev := &event.Event{
		Type:          typ,
		ListingId:     l.Id,
		AssetContract: l.AssetContract,
		TokenId:       l.TokenId,
		Account:       account.ToLower(),
		Quantity:      quantity,
		PricePerToken: pricePerToken,
		Currency:      l.Currency,
		Time:          im.now(),
	}
	if err := im.events.Insert(c, ev); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"type": typ,
		}).Warn("events.Insert failed")
	}
}

func safeQuantity(kind asset.Kind, quantity int64) int64 {
	if kind == asset.KindUnique {
		return 1
	}
	return quantity
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
