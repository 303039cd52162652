package domain

import (
	"github.com/openmarkets/goapi/base/ctx"
)

// RoleId identifies a marketplace permission.
type RoleId string

const (
	// RoleLister gates who may create listings.
	RoleLister RoleId = "lister"
	// RoleAsset gates which asset contracts may be listed.
	RoleAsset RoleId = "asset"
)

// FeeInfo is the platform fee applicable to a sale.
type FeeInfo struct {
	Recipient Address `bson:"recipient"`
	FeeBps    int64   `bson:"feeBps"`
}

// FeeLedger supplies the platform fee; read once per settlement.
type FeeLedger interface {
	GetPlatformFee(ctx.Ctx) (*FeeInfo, error)
}

// AccessControl answers role membership questions. Roles are default-open:
// a role without an allow-list admits every principal.
type AccessControl interface {
	HasRole(c ctx.Ctx, role RoleId, principal Address) (bool, error)
}

// Role is an allow-list. A role with no stored record admits everyone.
type Role struct {
	Id      RoleId    `bson:"roleId"`
	Members []Address `bson:"members"`
}

type PlatformRepo interface {
	GetFee(ctx.Ctx) (*FeeInfo, error)
	SetFee(ctx.Ctx, *FeeInfo) error
	GetRole(ctx.Ctx, RoleId) (*Role, error)
	SetRole(ctx.Ctx, *Role) error
}

type PlatformUseCase interface {
	FeeLedger
	AccessControl
	SetPlatformFee(c ctx.Ctx, fee *FeeInfo) error
	GrantRole(c ctx.Ctx, role RoleId, principal Address) error
	RevokeRole(c ctx.Ctx, role RoleId, principal Address) error
}
