package farm

import (
	"io"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
	"github.com/meverselabs/yfacfarm/common/bin"
)

type FarmContractConstruction struct {
	FarmToken      common.Address
	DevAddr        common.Address
	RewardPerBlock *amount.Amount
	StartBlock     uint32
	BonusEndBlock  uint32
}

func (s *FarmContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.FarmToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.DevAddr); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.RewardPerBlock); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.StartBlock); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.BonusEndBlock); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *FarmContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.FarmToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.DevAddr); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.RewardPerBlock); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.StartBlock); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.BonusEndBlock); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
