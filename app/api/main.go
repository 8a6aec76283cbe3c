package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/estatemint/goapi/base/config"
	"github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/base/log"
	bValidator "github.com/estatemint/goapi/base/validator"
	"github.com/estatemint/goapi/domain"
	mmiddleware "github.com/estatemint/goapi/middleware"
	"github.com/estatemint/goapi/service/chain"
	"github.com/estatemint/goapi/service/chain/contract"
	"github.com/estatemint/goapi/service/oracle"
	"github.com/estatemint/goapi/service/pinata"
	hc_delivery "github.com/estatemint/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/estatemint/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/estatemint/goapi/stores/healthcheck/usecase"
	minting_delivery "github.com/estatemint/goapi/stores/minting/delivery/http"
	minting_usecase "github.com/estatemint/goapi/stores/minting/usecase"
	web_resource_repository "github.com/estatemint/goapi/stores/web_resource/repository"
	web_resource_usecase "github.com/estatemint/goapi/stores/web_resource/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "infra/configs/config.yaml"
	}
	viper.SetConfigFile(configFile)
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

	cfg, err := config.Load()
	if err != nil {
		log.Log().WithField("err", err).Panic("invalid config")
	}

	// init chain service
	context.WithField("rpcUrl", cfg.RpcUrl).Info("dialing rpc node")
	dialCtx, dialCancel := ctx.WithTimeout(context, 10*time.Second)
	backend, err := ethclient.DialContext(dialCtx, cfg.RpcUrl)
	dialCancel()
	if err != nil {
		log.Log().WithField("err", err).Panic("can't dial rpc node")
	}
	var ethBackend domain.EthBackend = backend
	chainService := chain.NewClient(&chain.ClientCfg{
		Backend:             ethBackend,
		PrivateKey:          cfg.PrivateKey,
		ChainId:             cfg.ChainId,
		ConfirmationTimeout: cfg.ConfirmationTimeout,
		PollInterval:        cfg.PollInterval,
	})
	realEstate := contract.NewRealEstate(chainService, cfg.ContractAddress)

	oracleClient := oracle.NewClient(&oracle.ClientCfg{
		HttpClient: http.Client{},
		Url:        cfg.OracleUrl,
		Timeout:    cfg.OracleTimeout,
	})

	var pinataService pinata.Service
	if cfg.PinataApiKey != "" {
		pinataService = pinata.New(cfg.PinataApiKey, cfg.PinataApiSecret)
	}

	var ipfsReader domain.WebResourceReaderRepository
	if cfg.IpfsNodeUrl != "" {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(cfg.IpfsNodeUrl), cfg.ResourceTimeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, cfg.IpfsGateway, cfg.ResourceTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(http.Client{}, cfg.ResourceTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(ethBackend)
	hc := hc_usecase.New(hcRepo)
	minting := minting_usecase.New(&minting_usecase.MintingUseCaseCfg{
		Oracle:      oracleClient,
		Contract:    realEstate,
		Recipient:   cfg.Recipient,
		Pinata:      pinataService,
		WebResource: webResource,
	})

	hc_delivery.New(e, hc)
	minting_delivery.New(e, minting)

	go func() {
		if err := e.Start(cfg.ServerAddress); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
