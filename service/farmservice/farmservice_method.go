package farmservice

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/service/apiserver"
)

func (fs *FarmService) registerChain(s *apiserver.APIServer) error {
	js, err := s.JRPC("chain")
	if err != nil {
		return err
	}
	js.Set("height", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return fs.cn.Height(), nil
	})
	js.Set("advance", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		height, err := arg.Uint32(0)
		if err != nil {
			return nil, err
		}
		if err := fs.cn.AdvanceTo(height); err != nil {
			return nil, err
		}
		return fs.cn.Height(), nil
	})
	js.Set("receipts", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		height, err := arg.Uint32(0)
		if err != nil {
			return nil, err
		}
		return fs.cn.Receipts(height)
	})
	// call(to, method, args...)
	js.Set("call", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		to, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		method, err := arg.String(1)
		if err != nil {
			return nil, err
		}
		is, err := fs.cn.Call(common.ZeroAddr, to, method, arg.Rest(2)...)
		if err != nil {
			return nil, err
		}
		return plain(is), nil
	})
	// sendTx(from, to, method, args...)
	js.Set("sendTx", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		to, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		method, err := arg.String(2)
		if err != nil {
			return nil, err
		}
		return fs.send(from, to, method, arg.Rest(3)...)
	})
	return nil
}

func (fs *FarmService) registerToken(s *apiserver.APIServer) error {
	js, err := s.JRPC("token")
	if err != nil {
		return err
	}
	js.Set("balanceOf", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		token, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		addr, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		return fs.viewAmount(token, "BalanceOf", addr)
	})
	js.Set("totalSupply", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		token, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return fs.viewAmount(token, "TotalSupply")
	})
	js.Set("owner", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		token, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return fs.view(token, "Owner")
	})
	return nil
}

func (fs *FarmService) registerFarm(s *apiserver.APIServer) error {
	js, err := s.JRPC("farm")
	if err != nil {
		return err
	}
	js.Set("config", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		engine, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return fs.view(engine, "Config")
	})
	js.Set("poolLength", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		engine, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return fs.view(engine, "PoolLength")
	})
	js.Set("poolInfo", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		engine, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		pid, err := arg.Uint64(1)
		if err != nil {
			return nil, err
		}
		return fs.view(engine, "PoolInfo", pid)
	})
	js.Set("userInfo", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		engine, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		pid, err := arg.Uint64(1)
		if err != nil {
			return nil, err
		}
		user, err := arg.Address(2)
		if err != nil {
			return nil, err
		}
		return fs.view(engine, "UserInfo", pid, user)
	})
	js.Set("pendingReward", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		engine, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		pid, err := arg.Uint64(1)
		if err != nil {
			return nil, err
		}
		user, err := arg.Address(2)
		if err != nil {
			return nil, err
		}
		return fs.viewAmount(engine, "PendingReward", pid, user)
	})
	js.Set("getMultiplier", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		engine, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		from, err := arg.Uint32(1)
		if err != nil {
			return nil, err
		}
		to, err := arg.Uint32(2)
		if err != nil {
			return nil, err
		}
		return fs.view(engine, "GetMultiplier", from, to)
	})
	// deposit(engine, from, pid, amount)
	js.Set("deposit", fs.stakeHandler("Deposit"))
	// withdraw(engine, from, pid, amount)
	js.Set("withdraw", fs.stakeHandler("Withdraw"))
	// emergencyWithdraw(engine, from, pid)
	js.Set("emergencyWithdraw", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		engine, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		from, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		pid, err := arg.Uint64(2)
		if err != nil {
			return nil, err
		}
		return fs.send(from, engine, "EmergencyWithdraw", pid)
	})
	return nil
}

func (fs *FarmService) stakeHandler(method string) apiserver.Handler {
	return func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		engine, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		from, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		pid, err := arg.Uint64(2)
		if err != nil {
			return nil, err
		}
		am, err := arg.Amount(3)
		if err != nil {
			return nil, err
		}
		return fs.send(from, engine, method, pid, am)
	}
}
