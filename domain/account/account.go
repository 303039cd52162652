package account

import (
	"errors"
	"time"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
)

// Account is a wallet known to the marketplace, tracked for auth nonces.
type Account struct {
	Address   domain.Address `bson:"address"`
	Nonce     int32          `bson:"nonce"`
	CreatedAt time.Time      `bson:"createdAt,omitempty"`
	UpdatedAt time.Time      `bson:"updatedAt,omitempty"`
}

type Updater struct {
	Nonce     int32     `bson:"nonce"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty"`
}

var (
	// ErrInvalidNonce occured when validating a signature but the nonce of the address has not generated
	ErrInvalidNonce = errors.New("invalid nonce")
	// ErrInvalidSignature occured when a signature is invalid
	ErrInvalidSignature = errors.New("invalid signature")
)

type Usecase interface {
	Create(c ctx.Ctx, address domain.Address) (*Account, error)
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	GenerateNonce(c ctx.Ctx, address domain.Address) (int32, error)
	ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error
}

type Repo interface {
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	Insert(c ctx.Ctx, account *Account) error
	Update(c ctx.Ctx, address domain.Address, updater *Updater) error
}
