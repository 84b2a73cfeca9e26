package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/common/hash"
	"github.com/meverselabs/yfacfarm/core/backend/leveldb_driver"
	"github.com/meverselabs/yfacfarm/core/chain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Step is a transaction of the scenario
// Names in From and To are accounts, "farm", "yfac", a token symbol or an address in hex or base58
// Args prefixed with @ are resolved the same way
type Step struct {
	At     uint32   `yaml:"at"`
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Method string   `yaml:"method"`
	Args   []string `yaml:"args"`
	View   bool     `yaml:"view"`
}

// Scenario is a genesis and the steps run on an in-memory chain
type Scenario struct {
	Genesis Genesis  `yaml:"genesis"`
	Steps   []Step   `yaml:"steps"`
	Report  []string `yaml:"report"`
}

func simulateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate [scenario.yaml]",
		Short: "runs the scenario on an in-memory chain and prints the farm token balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sc, err := parseScenario(bs)
			if err != nil {
				return err
			}
			return runScenario(os.Stdout, sc)
		},
	}
}

func parseScenario(bs []byte) (*Scenario, error) {
	sc := &Scenario{}
	if err := yaml.UnmarshalStrict(bs, sc); err != nil {
		return nil, errors.Wrap(err, "scenario")
	}
	return sc, nil
}

// accountAddress returns the fixed address of the account name
func accountAddress(name string) common.Address {
	h := hash.Hash([]byte(name))
	return common.BytesToAddress(h[12:])
}

func nameResolver(name string) (common.Address, error) {
	if len(name) == 0 {
		return common.ZeroAddr, errors.WithStack(ErrUnknownName)
	}
	if strings.HasPrefix(name, "0x") {
		return common.ParseAddress(name)
	}
	if addr, err := common.ParseShortString(name); err == nil {
		return addr, nil
	}
	return accountAddress(name), nil
}

type simulation struct {
	cn  *chain.Chain
	dep *Deployment
}

func (sm *simulation) resolve(name string) (common.Address, error) {
	switch name {
	case "farm":
		return sm.dep.Engine, nil
	case farmTokenSymbol, strings.ToLower(farmTokenSymbol):
		return sm.dep.FarmToken, nil
	}
	if addr, has := sm.dep.Tokens[name]; has {
		return addr, nil
	}
	return nameResolver(name)
}

func (sm *simulation) args(step *Step) ([]interface{}, error) {
	args := make([]interface{}, 0, len(step.Args))
	for _, v := range step.Args {
		if strings.HasPrefix(v, "@") {
			addr, err := sm.resolve(v[1:])
			if err != nil {
				return nil, err
			}
			args = append(args, addr)
		} else {
			args = append(args, v)
		}
	}
	return args, nil
}

func (sm *simulation) balance(token common.Address, addr common.Address) string {
	is, err := sm.cn.Call(common.ZeroAddr, token, "BalanceOf", addr)
	if err != nil {
		return err.Error()
	}
	return format(is[0])
}

func format(v interface{}) string {
	if am, ok := v.(*amount.Amount); ok {
		return am.String()
	}
	return fmt.Sprintf("%v", v)
}

// runScenario runs the steps in order and prints the farm token balances of the report after each step
// A failed step is printed and the scenario goes on
func runScenario(w io.Writer, sc *Scenario) error {
	cn, err := openChain("leveldb", leveldb_driver.MemoryPath)
	if err != nil {
		return err
	}
	defer cn.Close()

	dep, err := deployGenesis(cn, &sc.Genesis, nameResolver)
	if err != nil {
		return err
	}
	sm := &simulation{cn: cn, dep: dep}
	fmt.Fprintf(w, "genesis height %v yfac %v farm %v\n", cn.Height(), common.ShortString(dep.FarmToken), common.ShortString(dep.Engine))

	for i := range sc.Steps {
		step := &sc.Steps[i]
		if step.At > 0 {
			if step.At <= cn.Height() {
				return errors.Wrapf(ErrStepHeight, "step %v at %v, height %v", i, step.At, cn.Height())
			}
			if err := cn.AdvanceTo(step.At - 1); err != nil {
				return err
			}
		}
		from, err := sm.resolve(step.From)
		if err != nil && !step.View {
			return errors.Wrapf(err, "step %v from", i)
		}
		to, err := sm.resolve(step.To)
		if err != nil {
			return errors.Wrapf(err, "step %v to", i)
		}
		args, err := sm.args(step)
		if err != nil {
			return errors.Wrapf(err, "step %v args", i)
		}

		var is []interface{}
		if step.View {
			is, err = cn.Call(common.ZeroAddr, to, step.Method, args...)
		} else {
			is, err = cn.ExecuteTx(from, to, step.Method, args...)
		}
		status := "ok"
		if err != nil {
			status = "error: " + err.Error()
		} else if len(is) > 0 {
			rs := make([]string, 0, len(is))
			for _, v := range is {
				rs = append(rs, format(v))
			}
			status = strings.Join(rs, " ")
		}
		fmt.Fprintf(w, "%v %v %v.%v %v\n", cn.Height(), step.From, step.To, step.Method, status)
		if err := sm.report(w, sc.Report); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "height %v %v total %v\n", cn.Height(), farmTokenSymbol, sm.totalSupply())
	return nil
}

func (sm *simulation) totalSupply() string {
	is, err := sm.cn.Call(common.ZeroAddr, sm.dep.FarmToken, "TotalSupply")
	if err != nil {
		return err.Error()
	}
	return format(is[0])
}

func (sm *simulation) report(w io.Writer, names []string) error {
	for _, name := range names {
		addr, err := sm.resolve(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %v %v\n", name, sm.balance(sm.dep.FarmToken, addr))
	}
	return nil
}
