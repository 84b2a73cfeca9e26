package main

import (
	"os"

	"github.com/meverselabs/yfacfarm/common/rlog"
	"github.com/meverselabs/yfacfarm/contract/farm"
	"github.com/meverselabs/yfacfarm/contract/token"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/spf13/cobra"

	_ "github.com/meverselabs/yfacfarm/core/backend/badger_driver"
	_ "github.com/meverselabs/yfacfarm/core/backend/bolt_driver"
	_ "github.com/meverselabs/yfacfarm/core/backend/leveldb_driver"
)

func init() {
	for _, cont := range []types.Contract{&token.TokenContract{}, &farm.FarmContract{}} {
		if _, err := types.RegisterContractType(cont); err != nil {
			panic(err)
		}
	}
}

func main() {
	var cfgPath string
	var envPath string
	rootCmd := &cobra.Command{
		Use:          "farmnode",
		Short:        "runs and inspects the yfac farm chain",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "./config.toml", "path of the toml config")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "env file of the FARM_ overrides")
	rootCmd.AddCommand(runCommand(&cfgPath, &envPath))
	rootCmd.AddCommand(simulateCommand())
	rootCmd.AddCommand(dumpCommand(&cfgPath, &envPath))
	if err := rootCmd.Execute(); err != nil {
		rlog.Sync()
		os.Exit(1)
	}
}
