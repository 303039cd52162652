package asset

import (
	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
)

// Kind tags the two supported asset families.
type Kind int32

const (
	// KindUnique is a single-unit asset, one owner per token id.
	KindUnique Kind = 721
	// KindMulti is a fungible-per-id asset with per-owner balances.
	KindMulti Kind = 1155
)

func (k Kind) IsValid() bool {
	return k == KindUnique || k == KindMulti
}

// Ref points at a token inside an asset contract.
type Ref struct {
	Contract domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Kind     Kind           `json:"assetKind" bson:"assetKind"`
}

// Contract is a registered asset contract.
type Contract struct {
	Address domain.Address `bson:"address"`
	Kind    Kind           `bson:"kind"`
	Name    string         `bson:"name"`
	Symbol  string         `bson:"symbol"`
}

// Holding records who holds how many units of a token. Unique assets keep a
// single holding with balance 1.
type Holding struct {
	Contract domain.Address `bson:"assetContract"`
	TokenId  domain.TokenId `bson:"tokenId"`
	Owner    domain.Address `bson:"owner"`
	Balance  int64          `bson:"balance"`
}

type ContractRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Contract, error)
	Create(c ctx.Ctx, contract *Contract) error
}

type HoldingRepo interface {
	FindOne(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (*Holding, error)
	FindAll(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) ([]*Holding, error)
	Upsert(c ctx.Ctx, holding *Holding) error
	Remove(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, owner domain.Address) error
}

type ApprovalRepo interface {
	IsApproved(c ctx.Ctx, owner, operator domain.Address) (bool, error)
	Set(c ctx.Ctx, owner, operator domain.Address, approved bool) error
}

// Adapter moves assets between owners, fail-closed. It is the only
// component allowed to mutate holdings on behalf of the engine.
type Adapter interface {
	// KindOf resolves the asset kind of a registered contract.
	KindOf(c ctx.Ctx, contract domain.Address) (Kind, error)
	// Transfer moves quantity units of ref from one owner to another.
	// Fails with domain.ErrInsufficientBalance when from does not hold
	// quantity units or has not approved the operator.
	Transfer(c ctx.Ctx, ref Ref, from, to domain.Address, quantity int64) error
	// BalanceAvailable reports whether owner holds at least quantity units.
	BalanceAvailable(c ctx.Ctx, ref Ref, owner domain.Address, quantity int64) (bool, error)
	IsApprovedForOperator(c ctx.Ctx, owner, operator domain.Address) (bool, error)
}
