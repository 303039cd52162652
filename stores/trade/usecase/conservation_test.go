package usecase

import (
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	"github.com/openmarkets/goapi/domain/escrow"
	"github.com/openmarkets/goapi/domain/event"
	"github.com/openmarkets/goapi/domain/listing"
	mDomain "github.com/openmarkets/goapi/domain/mocks"
	"github.com/openmarkets/goapi/domain/payment"
	"github.com/openmarkets/goapi/domain/trade"
	mQuery "github.com/openmarkets/goapi/service/query/mocks"
	payment_usecase "github.com/openmarkets/goapi/stores/payment/usecase"
)

// In-memory repositories backing the conservation scenario. They mirror
// the mongo repositories' key normalization so the usecases see the same
// semantics.

type memBalances struct {
	rows map[string]string
}

func balanceKey(owner, currency domain.Address) string {
	return owner.ToLowerStr() + "|" + currency.ToLowerStr()
}

func (m *memBalances) FindOne(c ctx.Ctx, owner, currency domain.Address) (*payment.Balance, error) {
	amount, ok := m.rows[balanceKey(owner, currency)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &payment.Balance{Owner: owner.ToLower(), Currency: currency.ToLower(), Amount: amount}, nil
}

func (m *memBalances) Set(c ctx.Ctx, owner, currency domain.Address, amount *big.Int) error {
	m.rows[balanceKey(owner, currency)] = amount.String()
	return nil
}

type memAllowances struct {
	rows map[string]string
}

func (m *memAllowances) FindOne(c ctx.Ctx, owner, operator, currency domain.Address) (*payment.Allowance, error) {
	amount, ok := m.rows[owner.ToLowerStr()+"|"+operator.ToLowerStr()+"|"+currency.ToLowerStr()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &payment.Allowance{Owner: owner.ToLower(), Operator: operator.ToLower(), Currency: currency.ToLower(), Amount: amount}, nil
}

func (m *memAllowances) Set(c ctx.Ctx, owner, operator, currency domain.Address, amount *big.Int) error {
	m.rows[owner.ToLowerStr()+"|"+operator.ToLowerStr()+"|"+currency.ToLowerStr()] = amount.String()
	return nil
}

type memListings struct {
	rows map[domain.ListingId]*listing.Listing
}

func (m *memListings) FindOne(c ctx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	l, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *l
	return &copied, nil
}

func (m *memListings) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	res := []*listing.Listing{}
	for _, l := range m.rows {
		res = append(res, l)
	}
	return res, nil
}

func (m *memListings) Count(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) (int, error) {
	return len(m.rows), nil
}

func (m *memListings) Create(c ctx.Ctx, l *listing.Listing) error {
	m.rows[l.Id] = l
	return nil
}

func (m *memListings) Patch(c ctx.Ctx, id domain.ListingId, patchable listing.Patchable) error {
	l, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patchable.StartTime != nil {
		l.StartTime = *patchable.StartTime
	}
	if patchable.EndTime != nil {
		l.EndTime = *patchable.EndTime
	}
	if patchable.Quantity != nil {
		l.Quantity = *patchable.Quantity
	}
	if patchable.Currency != nil {
		l.Currency = *patchable.Currency
	}
	if patchable.ReservePricePerToken != nil {
		l.ReservePricePerToken = *patchable.ReservePricePerToken
	}
	if patchable.BuyoutPricePerToken != nil {
		l.BuyoutPricePerToken = *patchable.BuyoutPricePerToken
	}
	if patchable.ClosedAt != nil {
		l.ClosedAt = patchable.ClosedAt
	}
	if patchable.UpdatedAt != nil {
		l.UpdatedAt = *patchable.UpdatedAt
	}
	return nil
}

func (m *memListings) NextId(c ctx.Ctx) (domain.ListingId, error) {
	return domain.ListingId(len(m.rows) + 1), nil
}

type memOffers struct {
	rows map[string]*trade.Offer
}

func offerKey(listingId domain.ListingId, offeror domain.Address) string {
	return fmt.Sprintf("%d|%s", listingId, offeror.ToLowerStr())
}

func (m *memOffers) FindOne(c ctx.Ctx, listingId domain.ListingId, offeror domain.Address) (*trade.Offer, error) {
	o, ok := m.rows[offerKey(listingId, offeror)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (m *memOffers) FindAll(c ctx.Ctx, opts ...trade.OfferFindAllOptionsFunc) ([]*trade.Offer, error) {
	options, err := trade.GetOfferFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	res := []*trade.Offer{}
	for _, o := range m.rows {
		if options.ListingId != nil && o.ListingId != *options.ListingId {
			continue
		}
		res = append(res, o)
	}
	return res, nil
}

func (m *memOffers) Upsert(c ctx.Ctx, offer *trade.Offer) error {
	m.rows[offerKey(offer.ListingId, offer.Offeror)] = offer
	return nil
}

func (m *memOffers) Remove(c ctx.Ctx, listingId domain.ListingId, offeror domain.Address) error {
	delete(m.rows, offerKey(listingId, offeror))
	return nil
}

type memWinningBids struct {
	rows map[domain.ListingId]*trade.WinningBid
}

func (m *memWinningBids) FindOne(c ctx.Ctx, listingId domain.ListingId) (*trade.WinningBid, error) {
	b, ok := m.rows[listingId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (m *memWinningBids) Upsert(c ctx.Ctx, bid *trade.WinningBid) error {
	m.rows[bid.ListingId] = bid
	return nil
}

func (m *memWinningBids) Remove(c ctx.Ctx, listingId domain.ListingId) error {
	delete(m.rows, listingId)
	return nil
}

type memEscrows struct {
	rows map[string]*escrow.Entry
}

func (m *memEscrows) FindOne(c ctx.Ctx, listingId domain.ListingId, offeror domain.Address) (*escrow.Entry, error) {
	e, ok := m.rows[offerKey(listingId, offeror)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *memEscrows) FindByListing(c ctx.Ctx, listingId domain.ListingId) ([]*escrow.Entry, error) {
	res := []*escrow.Entry{}
	for _, e := range m.rows {
		if e.ListingId == listingId {
			res = append(res, e)
		}
	}
	return res, nil
}

func (m *memEscrows) Create(c ctx.Ctx, entry *escrow.Entry) error {
	entry.Offeror = entry.Offeror.ToLower()
	entry.Currency = entry.Currency.ToLower()
	key := offerKey(entry.ListingId, entry.Offeror)
	if _, ok := m.rows[key]; ok {
		return domain.ErrConflict
	}
	m.rows[key] = entry
	return nil
}

func (m *memEscrows) Remove(c ctx.Ctx, listingId domain.ListingId, offeror domain.Address) error {
	key := offerKey(listingId, offeror)
	if _, ok := m.rows[key]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, key)
	return nil
}

func (m *memEscrows) SumHeld(c ctx.Ctx, currency domain.Address) (*big.Int, error) {
	sum := new(big.Int)
	for _, e := range m.rows {
		if !e.Currency.Equals(currency) {
			continue
		}
		amount, err := e.AmountInt()
		if err != nil {
			return nil, err
		}
		sum.Add(sum, amount)
	}
	return sum, nil
}

type memCredits struct {
	rows map[string]*big.Int
}

func (m *memCredits) FindOne(c ctx.Ctx, payee, currency domain.Address) (*escrow.Credit, error) {
	amount, ok := m.rows[balanceKey(payee, currency)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &escrow.Credit{Payee: payee.ToLower(), Currency: currency.ToLower(), Amount: amount.String()}, nil
}

func (m *memCredits) Add(c ctx.Ctx, payee, currency domain.Address, amount *big.Int) error {
	key := balanceKey(payee, currency)
	prev, ok := m.rows[key]
	if !ok {
		prev = new(big.Int)
	}
	m.rows[key] = new(big.Int).Add(prev, amount)
	return nil
}

func (m *memCredits) Remove(c ctx.Ctx, payee, currency domain.Address) error {
	delete(m.rows, balanceKey(payee, currency))
	return nil
}

func (m *memCredits) sum(currency domain.Address) *big.Int {
	sum := new(big.Int)
	suffix := "|" + currency.ToLowerStr()
	for key, amount := range m.rows {
		if len(key) >= len(suffix) && key[len(key)-len(suffix):] == suffix {
			sum.Add(sum, amount)
		}
	}
	return sum
}

type memEvents struct {
	rows []*event.Event
}

func (m *memEvents) Insert(c ctx.Ctx, ev *event.Event) error {
	m.rows = append(m.rows, ev)
	return nil
}

func (m *memEvents) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	return m.rows, nil
}

type memHoldings struct {
	rows map[string]int64
}

func holdingKey(ref asset.Ref, owner domain.Address) string {
	return string(ref.Contract.ToLower()) + "|" + string(ref.TokenId) + "|" + owner.ToLowerStr()
}

func (m *memHoldings) KindOf(c ctx.Ctx, contract domain.Address) (asset.Kind, error) {
	return asset.KindMulti, nil
}

func (m *memHoldings) Transfer(c ctx.Ctx, ref asset.Ref, from, to domain.Address, quantity int64) error {
	if m.rows[holdingKey(ref, from)] < quantity {
		return domain.ErrInsufficientBalance
	}
	m.rows[holdingKey(ref, from)] -= quantity
	m.rows[holdingKey(ref, to)] += quantity
	return nil
}

func (m *memHoldings) BalanceAvailable(c ctx.Ctx, ref asset.Ref, owner domain.Address, quantity int64) (bool, error) {
	return m.rows[holdingKey(ref, owner)] >= quantity, nil
}

func (m *memHoldings) IsApprovedForOperator(c ctx.Ctx, owner, operator domain.Address) (bool, error) {
	return true, nil
}

// unreliablePayments fails pushes to flagged payees so refunds take the
// credit path.
type unreliablePayments struct {
	payment.Adapter
	failPush map[domain.Address]bool
}

func (p *unreliablePayments) Push(c ctx.Ctx, payee, currency domain.Address, amount *big.Int) error {
	if p.failPush[payee.ToLower()] {
		return errors.New("payee rejected transfer")
	}
	return p.Adapter.Push(c, payee, currency, amount)
}

type conservationSuite struct {
	suite.Suite

	now      time.Time
	balances *memBalances
	escrows  *memEscrows
	credits  *memCredits
	pay      payment.Adapter
	subject  trade.UseCase
}

func TestConservation(t *testing.T) {
	suite.Run(t, new(conservationSuite))
}

const (
	conOperator = domain.Address("0xoperator")
	conSeller   = domain.Address("0xseller")
	conAlice    = domain.Address("0xalice")
	conBob      = domain.Address("0xbob")
	conHostile  = domain.Address("0xhostile")
	conTreasury = domain.Address("0xtreasury")
)

func (t *conservationSuite) SetupTest() {
	t.now = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	t.balances = &memBalances{rows: map[string]string{}}
	allowances := &memAllowances{rows: map[string]string{}}
	listings := &memListings{rows: map[domain.ListingId]*listing.Listing{}}
	offers := &memOffers{rows: map[string]*trade.Offer{}}
	winningBids := &memWinningBids{rows: map[domain.ListingId]*trade.WinningBid{}}
	t.escrows = &memEscrows{rows: map[string]*escrow.Entry{}}
	t.credits = &memCredits{rows: map[string]*big.Int{}}
	events := &memEvents{}
	holdings := &memHoldings{rows: map[string]int64{}}

	basePay := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		BalanceRepo:   t.balances,
		AllowanceRepo: allowances,
		PayTokenRepo:  &mDomain.PayTokenRepo{},
		Operator:      conOperator,
	})
	t.pay = &unreliablePayments{
		Adapter:  basePay,
		failPush: map[domain.Address]bool{conHostile: true},
	}

	fees := &mDomain.FeeLedger{}
	fees.On("GetPlatformFee", mock.Anything).
		Return(&domain.FeeInfo{Recipient: conTreasury, FeeBps: 250}, nil)

	q := &mQuery.Mongo{}
	q.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) })

	t.subject = New(&TradeUseCaseCfg{
		Query:          q,
		ListingRepo:    listings,
		OfferRepo:      offers,
		WinningBidRepo: winningBids,
		EscrowRepo:     t.escrows,
		CreditRepo:     t.credits,
		EventRepo:      events,
		Payments:       t.pay,
		Assets:         holdings,
		Fees:           fees,
		Operator:       conOperator,
		Now:            func() time.Time { return t.now },
	})

	// funded accounts
	t.Require().NoError(t.pay.Deposit(mockCtx, conAlice, domain.NativeTokenAddress, big.NewInt(10000)))
	t.Require().NoError(t.pay.Deposit(mockCtx, conBob, domain.NativeTokenAddress, big.NewInt(10000)))
	t.Require().NoError(t.pay.Deposit(mockCtx, conHostile, domain.NativeTokenAddress, big.NewInt(1000)))

	// auction lot already in marketplace custody, direct lot with the seller
	listings.rows[1] = &listing.Listing{
		Id:                   1,
		Owner:                conSeller,
		AssetContract:        "0xauctioned",
		TokenId:              "1",
		StartTime:            t.now.Add(-time.Hour),
		EndTime:              t.now.Add(time.Hour),
		Quantity:             2,
		Currency:             domain.NativeTokenAddress,
		ReservePricePerToken: "100",
		BuyoutPricePerToken:  "0",
		AssetKind:            asset.KindMulti,
		ListingType:          listing.TypeAuction,
	}
	listings.rows[2] = &listing.Listing{
		Id:                   2,
		Owner:                conSeller,
		AssetContract:        "0xdirect",
		TokenId:              "7",
		StartTime:            t.now.Add(-time.Hour),
		EndTime:              t.now.Add(24 * time.Hour),
		Quantity:             5,
		Currency:             domain.NativeTokenAddress,
		ReservePricePerToken: "0",
		BuyoutPricePerToken:  "0",
		AssetKind:            asset.KindMulti,
		ListingType:          listing.TypeDirect,
	}
	holdings.rows[holdingKey(listings.rows[1].AssetRef(), conOperator)] = 2
	holdings.rows[holdingKey(listings.rows[2].AssetRef(), conSeller)] = 5
}

// requireConserved checks that the funds the marketplace holds equal the
// unsettled escrow entries plus outstanding credits.
func (t *conservationSuite) requireConserved() {
	currency := domain.NativeTokenAddress
	held, err := t.pay.BalanceOf(mockCtx, conOperator, currency)
	t.Require().NoError(err)

	escrowed, err := t.escrows.SumHeld(mockCtx, currency)
	t.Require().NoError(err)

	accounted := new(big.Int).Add(escrowed, t.credits.sum(currency))
	t.Require().Zero(held.Cmp(accounted),
		"marketplace holds %s but escrow+credits account for %s", held, accounted)
}

func (t *conservationSuite) balanceOf(owner domain.Address) *big.Int {
	b, err := t.pay.BalanceOf(mockCtx, owner, domain.NativeTokenAddress)
	t.Require().NoError(err)
	return b
}

func (t *conservationSuite) TestFundsConservedAcrossTrades() {
	t.requireConserved()

	// opening bid
	err := t.subject.Offer(mockCtx, conHostile, &trade.OfferParams{
		ListingId: 1, Quantity: 2, Currency: domain.NativeTokenAddress,
		PricePerToken: "110", AttachedValue: "220",
	})
	t.Require().NoError(err)
	t.requireConserved()

	// outbid; the hostile payee rejects the refund, which becomes a credit
	err = t.subject.Offer(mockCtx, conAlice, &trade.OfferParams{
		ListingId: 1, Quantity: 2, Currency: domain.NativeTokenAddress,
		PricePerToken: "150", AttachedValue: "300",
	})
	t.Require().NoError(err)
	t.requireConserved()
	t.Equal(big.NewInt(220), t.credits.sum(domain.NativeTokenAddress))

	// outbid again; this refund pushes straight back
	err = t.subject.Offer(mockCtx, conBob, &trade.OfferParams{
		ListingId: 1, Quantity: 2, Currency: domain.NativeTokenAddress,
		PricePerToken: "200", AttachedValue: "400",
	})
	t.Require().NoError(err)
	t.requireConserved()
	t.Equal(big.NewInt(10000), t.balanceOf(conAlice))

	// a direct offer on the other listing escrows independently
	err = t.subject.Offer(mockCtx, conAlice, &trade.OfferParams{
		ListingId: 2, Quantity: 2, Currency: domain.NativeTokenAddress,
		PricePerToken: "50", AttachedValue: "100",
	})
	t.Require().NoError(err)
	t.requireConserved()

	// auction ends; settlement consumes the winner's escrow
	t.now = t.now.Add(time.Hour + time.Minute)
	err = t.subject.CloseAuction(mockCtx, 1, conSeller, domain.EmptyAddress)
	t.Require().NoError(err)
	t.requireConserved()

	// fee 400*250/10000 = 10, proceeds 390
	t.Equal(big.NewInt(390), t.balanceOf(conSeller))
	t.Equal(big.NewInt(10), t.balanceOf(conTreasury))

	// direct settlement consumes the remaining entry
	err = t.subject.AcceptOffer(mockCtx, 2, conSeller, conAlice, domain.NativeTokenAddress, "50")
	t.Require().NoError(err)
	t.requireConserved()

	// fee 100*250/10000 = 2, proceeds 98
	t.Equal(big.NewInt(488), t.balanceOf(conSeller))
	t.Equal(big.NewInt(12), t.balanceOf(conTreasury))
	t.Equal(big.NewInt(9900), t.balanceOf(conAlice))
	t.Equal(big.NewInt(9600), t.balanceOf(conBob))

	// nothing left in escrow; only the credit is still owed
	escrowed, err := t.escrows.SumHeld(mockCtx, domain.NativeTokenAddress)
	t.Require().NoError(err)
	t.Zero(escrowed.Sign())
	t.Equal(big.NewInt(220), t.balanceOf(conOperator))
	t.Equal(big.NewInt(220), t.credits.sum(domain.NativeTokenAddress))
}

func (t *conservationSuite) TestCancelOfferConserves() {
	err := t.subject.Offer(mockCtx, conAlice, &trade.OfferParams{
		ListingId: 2, Quantity: 3, Currency: domain.NativeTokenAddress,
		PricePerToken: "40", AttachedValue: "120",
	})
	t.Require().NoError(err)
	t.requireConserved()

	t.Require().NoError(t.subject.CancelOffer(mockCtx, 2, conAlice))
	t.requireConserved()
	t.Equal(big.NewInt(10000), t.balanceOf(conAlice))
	t.Zero(t.balanceOf(conOperator).Sign())
}
