package chain

import (
	"io"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/bin"
	"github.com/meverselabs/yfacfarm/core/types"
)

// Receipt is the result of a transaction executed at a height
type Receipt struct {
	Height  uint32         `json:"height"`
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	Method  string         `json:"method"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Events  []*types.Event `json:"events"`
}

func (s *Receipt) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint32(w, s.Height); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.From); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.To); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Method); err != nil {
		return sum, err
	}
	if sum, err := sw.Bool(w, s.Success); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Error); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, uint32(len(s.Events))); err != nil {
		return sum, err
	}
	for _, e := range s.Events {
		if sum, err := sw.WriterTo(w, e); err != nil {
			return sum, err
		}
	}
	return sw.Sum(), nil
}

func (s *Receipt) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint32(r, &s.Height); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.From); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.To); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Method); err != nil {
		return sum, err
	}
	if sum, err := sr.Bool(r, &s.Success); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Error); err != nil {
		return sum, err
	}
	var Len uint32
	if sum, err := sr.Uint32(r, &Len); err != nil {
		return sum, err
	}
	s.Events = make([]*types.Event, Len)
	for i := range s.Events {
		e := &types.Event{}
		if sum, err := sr.ReaderFrom(r, e); err != nil {
			return sum, err
		}
		s.Events[i] = e
	}
	return sr.Sum(), nil
}

// Receipts is the receipt list of a height
type Receipts []*Receipt

func (s Receipts) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint32(w, uint32(len(s))); err != nil {
		return sum, err
	}
	for _, rc := range s {
		if sum, err := sw.WriterTo(w, rc); err != nil {
			return sum, err
		}
	}
	return sw.Sum(), nil
}

func (s *Receipts) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	var Len uint32
	if sum, err := sr.Uint32(r, &Len); err != nil {
		return sum, err
	}
	rs := make(Receipts, Len)
	for i := range rs {
		rc := &Receipt{}
		if sum, err := sr.ReaderFrom(r, rc); err != nil {
			return sum, err
		}
		rs[i] = rc
	}
	*s = rs
	return sr.Sum(), nil
}
