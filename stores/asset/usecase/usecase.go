package usecase

import (
	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
)

type AssetUseCaseCfg struct {
	ContractRepo asset.ContractRepo
	HoldingRepo  asset.HoldingRepo
	ApprovalRepo asset.ApprovalRepo
}

type impl struct {
	contracts asset.ContractRepo
	holdings  asset.HoldingRepo
	approvals asset.ApprovalRepo
}

// New creates the holdings-backed asset adapter.
func New(cfg *AssetUseCaseCfg) asset.Adapter {
	return &impl{
		contracts: cfg.ContractRepo,
		holdings:  cfg.HoldingRepo,
		approvals: cfg.ApprovalRepo,
	}
}

func (im *impl) KindOf(c ctx.Ctx, contract domain.Address) (asset.Kind, error) {
	record, err := im.contracts.FindOne(c, contract)
	if err == domain.ErrNotFound {
		return 0, domain.ErrInvalidAddress
	} else if err != nil {
		return 0, err
	}
	return record.Kind, nil
}

func (im *impl) BalanceAvailable(c ctx.Ctx, ref asset.Ref, owner domain.Address, quantity int64) (bool, error) {
	holding, err := im.holdings.FindOne(c, ref.Contract, ref.TokenId, owner)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return holding.Balance >= quantity, nil
}

func (im *impl) IsApprovedForOperator(c ctx.Ctx, owner, operator domain.Address) (bool, error) {
	return im.approvals.IsApproved(c, owner, operator)
}

func (im *impl) Transfer(c ctx.Ctx, ref asset.Ref, from, to domain.Address, quantity int64) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"contract": ref.Contract,
		"tokenId":  ref.TokenId,
		"from":     from,
		"to":       to,
		"quantity": quantity,
	})

	if quantity <= 0 {
		return domain.ErrZeroQuantity
	}
	if ref.Kind == asset.KindUnique && quantity != 1 {
		return domain.ErrInsufficientBalance
	}

	src, err := im.holdings.FindOne(c, ref.Contract, ref.TokenId, from)
	if err == domain.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		return err
	}
	if src.Balance < quantity {
		return domain.ErrInsufficientBalance
	}

	if src.Balance == quantity {
		if err := im.holdings.Remove(c, ref.Contract, ref.TokenId, from); err != nil {
			c.WithField("err", err).Error("holdings.Remove failed")
			return err
		}
	} else {
		src.Balance -= quantity
		if err := im.holdings.Upsert(c, src); err != nil {
			c.WithField("err", err).Error("holdings.Upsert failed")
			return err
		}
	}

	dst, err := im.holdings.FindOne(c, ref.Contract, ref.TokenId, to)
	if err == domain.ErrNotFound {
		dst = &asset.Holding{
			Contract: ref.Contract,
			TokenId:  ref.TokenId,
			Owner:    to,
			Balance:  0,
		}
	} else if err != nil {
		return err
	}
	dst.Balance += quantity
	if err := im.holdings.Upsert(c, dst); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("holdings.Upsert failed")
		return err
	}
	return nil
}
