package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/database/mongoclient"
	"github.com/openmarkets/goapi/base/database/redisclient"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/base/metrics"
	pricefomatter "github.com/openmarkets/goapi/base/price_fomatter"
	bValidator "github.com/openmarkets/goapi/base/validator"
	"github.com/openmarkets/goapi/domain"
	mmiddleware "github.com/openmarkets/goapi/middleware"
	"github.com/openmarkets/goapi/service/query"
	"github.com/openmarkets/goapi/service/redis"
	account_delivery "github.com/openmarkets/goapi/stores/account/delivery/http"
	account_repository "github.com/openmarkets/goapi/stores/account/repository"
	account_usecase "github.com/openmarkets/goapi/stores/account/usecase"
	asset_delivery "github.com/openmarkets/goapi/stores/asset/delivery/http"
	asset_repository "github.com/openmarkets/goapi/stores/asset/repository"
	asset_usecase "github.com/openmarkets/goapi/stores/asset/usecase"
	auth_delivery "github.com/openmarkets/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/openmarkets/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/openmarkets/goapi/stores/auth/usecase"
	escrow_delivery "github.com/openmarkets/goapi/stores/escrow/delivery/http"
	escrow_repository "github.com/openmarkets/goapi/stores/escrow/repository"
	escrow_usecase "github.com/openmarkets/goapi/stores/escrow/usecase"
	event_delivery "github.com/openmarkets/goapi/stores/event/delivery/http"
	event_repository "github.com/openmarkets/goapi/stores/event/repository"
	hc_delivery "github.com/openmarkets/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/openmarkets/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/openmarkets/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/openmarkets/goapi/stores/listing/delivery/http"
	listing_repository "github.com/openmarkets/goapi/stores/listing/repository"
	listing_usecase "github.com/openmarkets/goapi/stores/listing/usecase"
	payment_delivery "github.com/openmarkets/goapi/stores/payment/delivery/http"
	payment_repository "github.com/openmarkets/goapi/stores/payment/repository"
	payment_usecase "github.com/openmarkets/goapi/stores/payment/usecase"
	paytoken_delivery "github.com/openmarkets/goapi/stores/paytoken/delivery/http"
	paytoken_repository "github.com/openmarkets/goapi/stores/paytoken/repository"
	platform_delivery "github.com/openmarkets/goapi/stores/platform/delivery/http"
	platform_repository "github.com/openmarkets/goapi/stores/platform/repository"
	platform_usecase "github.com/openmarkets/goapi/stores/platform/usecase"
	trade_repository "github.com/openmarkets/goapi/stores/trade/repository"
	trade_usecase "github.com/openmarkets/goapi/stores/trade/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	operator := domain.Address(viper.GetString("marketplace.operator")).ToLower()
	adminAddresses := viper.GetStringSlice("admin.addresses")

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q, redisCache)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q)
	platformRepo := platform_repository.NewPlatformRepo(q)
	contractRepo := asset_repository.NewContractRepo(q)
	holdingRepo := asset_repository.NewHoldingRepo(q)
	approvalRepo := asset_repository.NewApprovalRepo(q)
	balanceRepo := payment_repository.NewBalanceRepo(q)
	allowanceRepo := payment_repository.NewAllowanceRepo(q)
	listingRepo := listing_repository.NewListingRepo(q)
	offerRepo := trade_repository.NewOfferRepo(q)
	winningBidRepo := trade_repository.NewWinningBidRepo(q)
	escrowRepo := escrow_repository.NewEscrowRepo(q)
	creditRepo := escrow_repository.NewCreditRepo(q)
	eventRepo := event_repository.NewEventRepo(q)

	hc := hc_usecase.New(hcRepo)
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		Repo:         accountRepo,
		SignatureMsg: viper.GetString("auth.signatureMsg"),
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)
	platform := platform_usecase.New(platformRepo)
	assets := asset_usecase.New(&asset_usecase.AssetUseCaseCfg{
		ContractRepo: contractRepo,
		HoldingRepo:  holdingRepo,
		ApprovalRepo: approvalRepo,
	})
	priceFormatter := pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{
		Paytoken: paytokenRepo,
	})
	payments := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		BalanceRepo:   balanceRepo,
		AllowanceRepo: allowanceRepo,
		PayTokenRepo:  paytokenRepo,
		Operator:      operator,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:           listingRepo,
		OfferRepo:      offerRepo,
		WinningBidRepo: winningBidRepo,
		EventRepo:      eventRepo,
		AssetAdapter:   assets,
		AccessControl:  platform,
		PayTokenRepo:   paytokenRepo,
		PriceFormatter: priceFormatter,
		Operator:       operator,
		StartBuffer:    viper.GetDuration("marketplace.startBuffer"),
	})
	trade := trade_usecase.New(&trade_usecase.TradeUseCaseCfg{
		Query:          q,
		ListingRepo:    listingRepo,
		OfferRepo:      offerRepo,
		WinningBidRepo: winningBidRepo,
		EscrowRepo:     escrowRepo,
		CreditRepo:     creditRepo,
		EventRepo:      eventRepo,
		Payments:       payments,
		Assets:         assets,
		Fees:           platform,
		Operator:       operator,
		BidBufferBps:   viper.GetInt64("marketplace.bidBufferBps"),
	})
	escrow := escrow_usecase.New(&escrow_usecase.EscrowUseCaseCfg{
		Query:      q,
		EscrowRepo: escrowRepo,
		CreditRepo: creditRepo,
		Payments:   payments,
	})

	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, account, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, account)
	listing_delivery.New(e, listing, trade, authMiddleware)
	escrow_delivery.New(e, escrow, authMiddleware)
	platform_delivery.New(e, platform, authMiddleware)
	payment_delivery.New(e, payments, authMiddleware)
	asset_delivery.New(e, contractRepo, holdingRepo, approvalRepo, operator, authMiddleware)
	paytoken_delivery.New(e, paytokenRepo, authMiddleware)
	event_delivery.New(e, eventRepo)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
