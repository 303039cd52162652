package payment

import (
	"math/big"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
)

// Balance is an account's holding of one currency. The marketplace's own
// escrow account is just another row.
type Balance struct {
	Owner    domain.Address `bson:"owner"`
	Currency domain.Address `bson:"currency"`
	Amount   string         `bson:"amount"`
}

func (b *Balance) AmountInt() (*big.Int, error) {
	return domain.ParseAmount(b.Amount)
}

// Allowance is the amount of a token currency an owner allows the
// marketplace operator to pull.
type Allowance struct {
	Owner    domain.Address `bson:"owner"`
	Operator domain.Address `bson:"operator"`
	Currency domain.Address `bson:"currency"`
	Amount   string         `bson:"amount"`
}

type BalanceRepo interface {
	FindOne(c ctx.Ctx, owner, currency domain.Address) (*Balance, error)
	Set(c ctx.Ctx, owner, currency domain.Address, amount *big.Int) error
}

type AllowanceRepo interface {
	FindOne(c ctx.Ctx, owner, operator, currency domain.Address) (*Allowance, error)
	Set(c ctx.Ctx, owner, operator, currency domain.Address, amount *big.Int) error
}

// Adapter moves currency in and out of marketplace custody, fail-closed.
// Native value and fungible tokens are the two supported variants; the
// currency address selects between them.
type Adapter interface {
	// Pull escrows amount from payer into marketplace custody. For the
	// native currency attachedValue must equal amount exactly; for token
	// currencies the payer must have approved at least amount and
	// attachedValue must be zero.
	Pull(c ctx.Ctx, payer, currency domain.Address, amount, attachedValue *big.Int) error
	// Push pays amount out of marketplace custody.
	Push(c ctx.Ctx, payee, currency domain.Address, amount *big.Int) error
	BalanceOf(c ctx.Ctx, owner, currency domain.Address) (*big.Int, error)
	// Approve grants the marketplace operator an allowance on a token
	// currency.
	Approve(c ctx.Ctx, owner, currency domain.Address, amount *big.Int) error
	// Deposit credits an account, the ledger counterpart of wrapping or
	// funding a wallet.
	Deposit(c ctx.Ctx, owner, currency domain.Address, amount *big.Int) error
}
