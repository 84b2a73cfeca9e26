package farmservice

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/core/chain"
	"github.com/meverselabs/yfacfarm/service/apiserver"
	"github.com/pkg/errors"
)

// FarmService exposes the chain, the tokens and the farm engines as json rpc subs
// Transactions are sent on behalf of the from address given in the parameters
type FarmService struct {
	cn *chain.Chain
}

// NewFarmService returns a FarmService
func NewFarmService(cn *chain.Chain) *FarmService {
	return &FarmService{
		cn: cn,
	}
}

// Name returns the name of the service
func (fs *FarmService) Name() string {
	return "farm.farmservice"
}

// Register sets the chain, token and farm subs of the server
func (fs *FarmService) Register(s *apiserver.APIServer) error {
	if err := fs.registerChain(s); err != nil {
		return err
	}
	if err := fs.registerToken(s); err != nil {
		return err
	}
	if err := fs.registerFarm(s); err != nil {
		return err
	}
	return nil
}

// view runs the read only method and returns its first result
func (fs *FarmService) view(to common.Address, method string, args ...interface{}) (interface{}, error) {
	is, err := fs.cn.Call(common.ZeroAddr, to, method, args...)
	if err != nil {
		return nil, err
	}
	if len(is) == 0 {
		return nil, nil
	}
	return is[0], nil
}

func (fs *FarmService) viewAmount(to common.Address, method string, args ...interface{}) (string, error) {
	v, err := fs.view(to, method, args...)
	if err != nil {
		return "", err
	}
	am, ok := v.(*amount.Amount)
	if !ok {
		return "", errors.Wrapf(ErrInvalidResult, "%v of %v", method, to.String())
	}
	return am.Int.String(), nil
}

// TxResult is the rpc result of a sent transaction
type TxResult struct {
	Height uint32        `json:"height"`
	Result []interface{} `json:"result"`
}

func (fs *FarmService) send(from common.Address, to common.Address, method string, args ...interface{}) (*TxResult, error) {
	is, err := fs.cn.ExecuteTx(from, to, method, args...)
	if err != nil {
		return nil, err
	}
	return &TxResult{
		Height: fs.cn.Height(),
		Result: plain(is),
	}, nil
}

// plain renders amounts in base units
func plain(is []interface{}) []interface{} {
	rs := make([]interface{}, 0, len(is))
	for _, v := range is {
		if am, ok := v.(*amount.Amount); ok {
			rs = append(rs, am.Int.String())
		} else {
			rs = append(rs, v)
		}
	}
	return rs
}
