package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/core/chain"
	"github.com/meverselabs/yfacfarm/core/types"
	"github.com/spf13/cobra"
)

func dumpCommand(pCfgPath *string, pEnvPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dump (contract hex or base58)",
		Short: "prints the stored contracts and their data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*pCfgPath, *pEnvPath)
			if err != nil {
				return err
			}
			var filter *common.Address
			if len(args) > 0 {
				addr, err := parseAddress(args[0])
				if err != nil {
					return err
				}
				filter = &addr
			}
			cn, err := openChain(cfg.StoreDriver, cfg.StorePath)
			if err != nil {
				return err
			}
			defer cn.Close()
			return dumpStore(os.Stdout, cn.Store(), filter)
		},
	}
}

func dumpStore(w io.Writer, st *chain.Store, filter *common.Address) error {
	fmt.Fprintf(w, "height %v\n", st.Height())
	cds, err := st.Contracts()
	if err != nil {
		return err
	}
	for _, cd := range cds {
		if filter != nil && cd.Address != *filter {
			continue
		}
		fmt.Fprintf(w, "contract %v %v (%v) owner %v\n", cd.Address.String(), common.ShortString(cd.Address), types.ContractName(cd.ClassID), cd.Owner.String())
		if err := st.EachData(cd.Address, func(addr common.Address, name []byte, value []byte) error {
			if addr == common.ZeroAddr {
				fmt.Fprintf(w, "  %x\n", name)
			} else {
				fmt.Fprintf(w, "  %v %x\n", addr.String(), name)
			}
			fmt.Fprint(w, spew.Sdump(value))
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}
