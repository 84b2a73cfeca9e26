package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/meverselabs/yfacfarm/cmd/closer"
	"github.com/meverselabs/yfacfarm/common/rlog"
	"github.com/meverselabs/yfacfarm/core/backend"
	"github.com/meverselabs/yfacfarm/core/chain"
	"github.com/meverselabs/yfacfarm/service/apiserver"
	"github.com/meverselabs/yfacfarm/service/farmservice"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runCommand(pCfgPath *string, pEnvPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "runs the chain with the json rpc api, deploying the genesis on an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*pCfgPath, *pEnvPath)
			if err != nil {
				return err
			}
			if err := setupLog(cfg); err != nil {
				return err
			}
			return runNode(cfg)
		},
	}
}

func setupLog(cfg *Config) error {
	if cfg.Development {
		rlog.SetDevelopment(true)
	}
	return rlog.SetLevel(cfg.LogLevel)
}

func openChain(driver string, path string) (*chain.Chain, error) {
	db, err := backend.Create(driver, path)
	if err != nil {
		return nil, err
	}
	st, err := chain.NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return chain.NewChain(st), nil
}

func runNode(cfg *Config) error {
	log := rlog.Named("farmnode")

	cm := closer.NewManager()
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		<-sigc
		cm.CloseAll()
	}()
	defer cm.CloseAll()

	cn, err := openChain(cfg.StoreDriver, cfg.StorePath)
	if err != nil {
		return err
	}
	cm.Add("chain", cn)

	if cn.Height() == 0 {
		if _, err := deployGenesis(cn, &cfg.Genesis, parseAddress); err != nil {
			return err
		}
	} else {
		log.Info("load", zap.String("driver", cfg.StoreDriver), zap.Uint32("height", cn.Height()))
	}

	api := apiserver.NewAPIServer(cn.Registry(), cfg.APIWorkers)
	if err := farmservice.NewFarmService(cn).Register(api); err != nil {
		return err
	}
	cm.Add("apiserver", api)
	go func() {
		log.Info("listen", zap.String("bind", cfg.APIBind))
		if err := api.Run(cfg.APIBind); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("apiserver", zap.Error(err))
			cm.CloseAll()
		}
	}()
	cm.Wait()
	return nil
}
