package usecase

import (
	"fmt"
	"math/big"
	"time"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/keylock"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	"github.com/openmarkets/goapi/domain/escrow"
	"github.com/openmarkets/goapi/domain/event"
	"github.com/openmarkets/goapi/domain/listing"
	"github.com/openmarkets/goapi/domain/payment"
	"github.com/openmarkets/goapi/domain/trade"
	"github.com/openmarkets/goapi/service/query"
)

// defaultBidBufferBps is the minimum relative outbid step, 5%.
const defaultBidBufferBps = 500

type TradeUseCaseCfg struct {
	Query          query.Mongo
	ListingRepo    listing.Repo
	OfferRepo      trade.OfferRepo
	WinningBidRepo trade.WinningBidRepo
	EscrowRepo     escrow.Repo
	CreditRepo     escrow.CreditRepo
	EventRepo      event.Repo
	Payments       payment.Adapter
	Assets         asset.Adapter
	Fees           domain.FeeLedger
	// Operator is the custody account for escrowed assets and funds.
	Operator     domain.Address
	BidBufferBps int64
	Now          func() time.Time
}

type impl struct {
	q            query.Mongo
	listings     listing.Repo
	offers       trade.OfferRepo
	winningBids  trade.WinningBidRepo
	escrows      escrow.Repo
	credits      escrow.CreditRepo
	events       event.Repo
	payments     payment.Adapter
	assets       asset.Adapter
	fees         domain.FeeLedger
	locks        *keylock.KeyLock
	operator     domain.Address
	bidBufferBps int64
	now          func() time.Time
}

// New creates trade usecase
func New(cfg *TradeUseCaseCfg) trade.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	bidBufferBps := cfg.BidBufferBps
	if bidBufferBps == 0 {
		bidBufferBps = defaultBidBufferBps
	}
	return &impl{
		q:            cfg.Query,
		listings:     cfg.ListingRepo,
		offers:       cfg.OfferRepo,
		winningBids:  cfg.WinningBidRepo,
		escrows:      cfg.EscrowRepo,
		credits:      cfg.CreditRepo,
		events:       cfg.EventRepo,
		payments:     cfg.Payments,
		assets:       cfg.Assets,
		fees:         cfg.Fees,
		locks:        keylock.New(),
		operator:     cfg.Operator.ToLower(),
		bidBufferBps: bidBufferBps,
		now:          now,
	}
}

func lockKey(id domain.ListingId) string {
	return fmt.Sprintf("listing:%d", id)
}

func (im *impl) Offer(c ctx.Ctx, caller domain.Address, params *trade.OfferParams) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"listingId": params.ListingId,
		"offeror":   caller,
	})

	im.locks.Lock(lockKey(params.ListingId))
	defer im.locks.Unlock(lockKey(params.ListingId))

	l, err := im.listings.FindOne(c, params.ListingId)
	if err != nil {
		c.WithField("err", err).Error("listings.FindOne failed")
		return err
	}

	now := im.now()
	if !l.IsOpenAt(now) {
		return domain.ErrListingNotOpen
	}

	if params.Quantity <= 0 {
		return domain.ErrZeroQuantity
	}

	price, err := domain.ParseAmount(params.PricePerToken)
	if err != nil {
		return err
	}
	attached, err := domain.ParseAmount(orZero(params.AttachedValue))
	if err != nil {
		return err
	}

	if l.ListingType == listing.TypeAuction {
		return im.bid(c, l, caller, price, attached, params)
	}
	return im.offerDirect(c, l, caller, price, attached, params)
}

func (im *impl) offerDirect(c ctx.Ctx, l *listing.Listing, caller domain.Address, price, attached *big.Int, params *trade.OfferParams) error {
	if !params.Currency.Equals(l.Currency) {
		return domain.ErrInvalidCurrency
	}
	if params.Quantity > l.Quantity {
		return domain.ErrInsufficientQuantity
	}

	total := new(big.Int).Mul(price, big.NewInt(params.Quantity))
	now := im.now()

	var expiration time.Time
	if params.ExpirationTime > 0 {
		expiration = time.Unix(params.ExpirationTime, 0)
		if !expiration.After(now) {
			return domain.ErrOfferExpired
		}
	}

	offer := &trade.Offer{
		ListingId:      l.Id,
		Offeror:        caller.ToLower(),
		Quantity:       params.Quantity,
		Currency:       l.Currency,
		PricePerToken:  price.String(),
		ExpirationTime: expiration,
		CreatedAt:      now,
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		// a re-offer replaces the previous escrow entry
		if prev, err := im.escrows.FindOne(c, l.Id, caller); err == nil {
			if err := im.releaseEscrow(c, prev); err != nil {
				return err
			}
		} else if err != domain.ErrNotFound {
			return err
		}

		if err := im.payments.Pull(c, caller, l.Currency, total, attached); err != nil {
			return err
		}
		if err := im.escrows.Create(c, &escrow.Entry{
			ListingId: l.Id,
			Offeror:   caller,
			Currency:  l.Currency,
			Amount:    total.String(),
			Kind:      escrow.KindOffer,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		if err := im.offers.Upsert(c, offer); err != nil {
			return err
		}

		im.emit(c, event.TypeNewOffer, l, caller, params.Quantity, price.String(), total.String())
		return nil
	})
}

func (im *impl) bid(c ctx.Ctx, l *listing.Listing, caller domain.Address, price, attached *big.Int, params *trade.OfferParams) error {
	if !params.Currency.Equals(l.Currency) {
		return domain.ErrInvalidCurrency
	}

	// auction bids always target the whole lot
	quantity := l.Quantity
	total := new(big.Int).Mul(price, big.NewInt(quantity))
	now := im.now()

	incumbent, err := im.winningBids.FindOne(c, l.Id)
	if err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("winningBids.FindOne failed")
		return err
	}

	floor, err := im.bidFloor(c, l, incumbent, quantity)
	if err != nil {
		return err
	}
	if total.Cmp(floor) < 0 {
		return domain.ErrBidTooLow
	}

	buyout, err := l.BuyoutPrice()
	if err != nil {
		return err
	}
	buyoutTotal := new(big.Int).Mul(buyout, big.NewInt(quantity))
	isBuyout := buyout.Sign() > 0 && total.Cmp(buyoutTotal) >= 0

	bid := &trade.WinningBid{
		ListingId:     l.Id,
		Offeror:       caller.ToLower(),
		Quantity:      quantity,
		Currency:      l.Currency,
		PricePerToken: price.String(),
		CreatedAt:     now,
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.payments.Pull(c, caller, l.Currency, total, attached); err != nil {
			return err
		}

		// the displaced bidder gets refunded before the new bid is seated
		if incumbent != nil {
			prev, err := im.escrows.FindOne(c, l.Id, incumbent.Offeror)
			if err != nil && err != domain.ErrNotFound {
				return err
			}
			if prev != nil {
				if err := im.releaseEscrow(c, prev); err != nil {
					return err
				}
			}
		}

		if err := im.escrows.Create(c, &escrow.Entry{
			ListingId: l.Id,
			Offeror:   caller,
			Currency:  l.Currency,
			Amount:    total.String(),
			Kind:      escrow.KindBid,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		if err := im.winningBids.Upsert(c, bid); err != nil {
			return err
		}

		im.emit(c, event.TypeNewOffer, l, caller, quantity, price.String(), total.String())

		if isBuyout {
			return im.settleAuction(c, l, bid, now)
		}
		return nil
	})
}

// bidFloor is the lowest acceptable bid total: the reserve, or the
// incumbent total raised by the bid buffer.
func (im *impl) bidFloor(c ctx.Ctx, l *listing.Listing, incumbent *trade.WinningBid, quantity int64) (*big.Int, error) {
	reserve, err := l.ReservePrice()
	if err != nil {
		return nil, err
	}
	floor := new(big.Int).Mul(reserve, big.NewInt(quantity))

	if incumbent != nil {
		incumbentTotal, err := incumbent.Total()
		if err != nil {
			return nil, err
		}
		buffer := new(big.Int).Mul(incumbentTotal, big.NewInt(im.bidBufferBps))
		buffer.Div(buffer, big.NewInt(domain.MaxBps))
		raised := new(big.Int).Add(incumbentTotal, buffer)
		if raised.Cmp(floor) > 0 {
			floor = raised
		}
	}
	return floor, nil
}

func (im *impl) AcceptOffer(c ctx.Ctx, listingId domain.ListingId, caller, offeror domain.Address, currency domain.Address, pricePerToken string) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"listingId": listingId,
		"caller":    caller,
		"offeror":   offeror,
	})

	im.locks.Lock(lockKey(listingId))
	defer im.locks.Unlock(lockKey(listingId))

	l, err := im.listings.FindOne(c, listingId)
	if err != nil {
		c.WithField("err", err).Error("listings.FindOne failed")
		return err
	}
	if l.ListingType != listing.TypeDirect {
		return domain.ErrBadParamInput
	}
	if !l.Owner.Equals(caller) {
		return domain.ErrNotListingOwner
	}

	now := im.now()
	if !l.IsOpenAt(now) {
		return domain.ErrListingNotOpen
	}

	offer, err := im.offers.FindOne(c, listingId, offeror)
	if err != nil {
		c.WithField("err", err).Error("offers.FindOne failed")
		return err
	}
	if !offer.ExpirationTime.IsZero() && !offer.ExpirationTime.After(now) {
		return domain.ErrOfferExpired
	}

	// the seller must accept the exact terms on record
	if !offer.Currency.Equals(currency) || offer.PricePerToken != pricePerToken {
		return domain.ErrValueMismatch
	}
	if offer.Quantity > l.Quantity {
		return domain.ErrInsufficientQuantity
	}

	if ok, err := im.assets.BalanceAvailable(c, l.AssetRef(), l.Owner, offer.Quantity); err != nil {
		return err
	} else if !ok {
		return domain.ErrInsufficientBalance
	}
	if ok, err := im.assets.IsApprovedForOperator(c, l.Owner, im.operator); err != nil {
		return err
	} else if !ok {
		return domain.ErrInsufficientBalance
	}

	total, err := offer.Total()
	if err != nil {
		return err
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		entry, err := im.escrows.FindOne(c, listingId, offeror)
		if err != nil {
			return err
		}
		held, err := entry.AmountInt()
		if err != nil {
			return err
		}
		if held.Cmp(total) != 0 {
			return domain.ErrValueMismatch
		}

		if err := im.payout(c, l.Owner, l.Currency, total); err != nil {
			return err
		}
		if err := im.escrows.Remove(c, listingId, offeror); err != nil {
			return err
		}
		if err := im.offers.Remove(c, listingId, offeror); err != nil {
			return err
		}

		if err := im.assets.Transfer(c, l.AssetRef(), l.Owner, offeror, offer.Quantity); err != nil {
			return err
		}

		remaining := l.Quantity - offer.Quantity
		patch := listing.Patchable{Quantity: &remaining, UpdatedAt: &now}
		if remaining == 0 {
			patch.ClosedAt = &now
		}
		if err := im.listings.Patch(c, listingId, patch); err != nil {
			return err
		}

		im.emit(c, event.TypeSale, l, offeror, offer.Quantity, offer.PricePerToken, total.String())
		return nil
	})
}

func (im *impl) CancelOffer(c ctx.Ctx, listingId domain.ListingId, caller domain.Address) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"listingId": listingId,
		"caller":    caller,
	})

	im.locks.Lock(lockKey(listingId))
	defer im.locks.Unlock(lockKey(listingId))

	if _, err := im.offers.FindOne(c, listingId, caller); err != nil {
		return err
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		entry, err := im.escrows.FindOne(c, listingId, caller)
		if err != nil {
			return err
		}
		if entry.Kind != escrow.KindOffer {
			return domain.ErrBadParamInput
		}
		if err := im.releaseEscrow(c, entry); err != nil {
			return err
		}
		return im.offers.Remove(c, listingId, caller)
	})
}

func (im *impl) CloseAuction(c ctx.Ctx, listingId domain.ListingId, caller, recipient domain.Address) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"listingId": listingId,
		"caller":    caller,
	})

	im.locks.Lock(lockKey(listingId))
	defer im.locks.Unlock(lockKey(listingId))

	l, err := im.listings.FindOne(c, listingId)
	if err != nil {
		c.WithField("err", err).Error("listings.FindOne failed")
		return err
	}
	if l.ListingType != listing.TypeAuction {
		return domain.ErrBadParamInput
	}

	// settled auctions stay settled
	if l.ClosedAt != nil {
		return domain.ErrAuctionClosed
	}

	now := im.now()
	bid, err := im.winningBids.FindOne(c, listingId)
	if err == domain.ErrNotFound {
		// no bids: the lister may cancel and reclaim custody
		if !l.Owner.Equals(caller) {
			return domain.ErrNotListingOwner
		}
		return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
			if err := im.assets.Transfer(c, l.AssetRef(), im.operator, l.Owner, l.Quantity); err != nil {
				return err
			}
			patch := listing.Patchable{ClosedAt: &now, UpdatedAt: &now}
			if err := im.listings.Patch(c, listingId, patch); err != nil {
				return err
			}
			im.emit(c, event.TypeAuctionClosed, l, l.Owner, l.Quantity, "0", "0")
			return nil
		})
	} else if err != nil {
		c.WithField("err", err).Error("winningBids.FindOne failed")
		return err
	}

	if now.Before(l.EndTime) {
		return domain.ErrAuctionNotEnded
	}

	// recipient, when given, must name a party of the settlement
	if !recipient.IsEmpty() && !recipient.Equals(l.Owner) && !recipient.Equals(bid.Offeror) {
		return domain.ErrBadParamInput
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		return im.settleAuction(c, l, bid, now)
	})
}

// settleAuction consumes the winner's escrow, pays the lister and hands
// over custody. Callers hold the listing lock and a transaction.
func (im *impl) settleAuction(c ctx.Ctx, l *listing.Listing, bid *trade.WinningBid, now time.Time) error {
	total, err := bid.Total()
	if err != nil {
		return err
	}

	entry, err := im.escrows.FindOne(c, l.Id, bid.Offeror)
	if err != nil {
		return err
	}
	held, err := entry.AmountInt()
	if err != nil {
		return err
	}
	if held.Cmp(total) != 0 {
		return domain.ErrValueMismatch
	}

	if err := im.payoutOrCredit(c, l.Owner, l.Currency, total); err != nil {
		return err
	}
	if err := im.escrows.Remove(c, l.Id, bid.Offeror); err != nil {
		return err
	}

	if err := im.assets.Transfer(c, l.AssetRef(), im.operator, bid.Offeror, bid.Quantity); err != nil {
		return err
	}

	zero := int64(0)
	patch := listing.Patchable{Quantity: &zero, ClosedAt: &now, UpdatedAt: &now}
	if err := im.listings.Patch(c, l.Id, patch); err != nil {
		return err
	}

	im.emit(c, event.TypeAuctionClosed, l, bid.Offeror, bid.Quantity, bid.PricePerToken, total.String())
	return nil
}

// payout splits total into platform fee and seller proceeds, fail-closed.
func (im *impl) payout(c ctx.Ctx, seller, currency domain.Address, total *big.Int) error {
	fee, proceeds, recipient, err := im.splitFee(c, total)
	if err != nil {
		return err
	}
	if fee.Sign() > 0 {
		if err := im.payments.Push(c, recipient, currency, fee); err != nil {
			return err
		}
	}
	return im.payments.Push(c, seller, currency, proceeds)
}

// payoutOrCredit is payout with the credit fallback: a failing push rolls
// into a withdrawable credit so settlement cannot be blocked.
func (im *impl) payoutOrCredit(c ctx.Ctx, seller, currency domain.Address, total *big.Int) error {
	fee, proceeds, recipient, err := im.splitFee(c, total)
	if err != nil {
		return err
	}
	if fee.Sign() > 0 {
		if err := im.pushOrCredit(c, recipient, currency, fee); err != nil {
			return err
		}
	}
	return im.pushOrCredit(c, seller, currency, proceeds)
}

func (im *impl) splitFee(c ctx.Ctx, total *big.Int) (fee, proceeds *big.Int, recipient domain.Address, err error) {
	info, err := im.fees.GetPlatformFee(c)
	if err != nil {
		return nil, nil, domain.EmptyAddress, err
	}
	fee = new(big.Int).Mul(total, big.NewInt(info.FeeBps))
	fee.Div(fee, big.NewInt(domain.MaxBps))
	proceeds = new(big.Int).Sub(total, fee)
	return fee, proceeds, info.Recipient, nil
}

// releaseEscrow refunds an entry, falling back to a credit row when the
// direct push fails so a hostile payee cannot wedge the listing.
func (im *impl) releaseEscrow(c ctx.Ctx, entry *escrow.Entry) error {
	amount, err := entry.AmountInt()
	if err != nil {
		return err
	}
	if err := im.pushOrCredit(c, entry.Offeror, entry.Currency, amount); err != nil {
		return err
	}
	return im.escrows.Remove(c, entry.ListingId, entry.Offeror)
}

func (im *impl) pushOrCredit(c ctx.Ctx, payee, currency domain.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	if err := im.payments.Push(c, payee, currency, amount); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"payee": payee,
		}).Warn("payments.Push failed, crediting instead")
		return im.credits.Add(c, payee, currency, amount)
	}
	return nil
}

func (im *impl) GetWinningBid(c ctx.Ctx, listingId domain.ListingId) (*trade.WinningBid, error) {
	return im.winningBids.FindOne(c, listingId)
}

func (im *impl) GetOffers(c ctx.Ctx, listingId domain.ListingId) ([]*trade.Offer, error) {
	return im.offers.FindAll(c, trade.WithListingId(listingId))
}

func (im *impl) emit(c ctx.Ctx, typ event.Type, l *listing.Listing, account domain.Address, quantity int64, pricePerToken, totalPrice string) {
	ev := &event.Event{
		Type:          typ,
		ListingId:     l.Id,
		AssetContract: l.AssetContract,
		TokenId:       l.TokenId,
		Account:       account.ToLower(),
		Quantity:      quantity,
		PricePerToken: pricePerToken,
		TotalPrice:    totalPrice,
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

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
