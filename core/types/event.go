package types

import (
	"io"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/bin"
)

// EventAttr is a named value of the event
type EventAttr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is emitted by a contract while the transaction is executed
type Event struct {
	Index    uint16         `json:"index"`
	Contract common.Address `json:"contract"`
	Name     string         `json:"name"`
	Attrs    []EventAttr    `json:"attrs"`
}

// Attr returns the value of the key
func (e *Event) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Event) Clone() *Event {
	attrs := make([]EventAttr, len(e.Attrs))
	copy(attrs, e.Attrs)
	return &Event{
		Index:    e.Index,
		Contract: e.Contract,
		Name:     e.Name,
		Attrs:    attrs,
	}
}

func (e *Event) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint32(w, uint32(e.Index)); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, e.Contract); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, e.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, uint32(len(e.Attrs))); err != nil {
		return sum, err
	}
	for _, a := range e.Attrs {
		if sum, err := sw.String(w, a.Key); err != nil {
			return sum, err
		}
		if sum, err := sw.String(w, a.Value); err != nil {
			return sum, err
		}
	}
	return sw.Sum(), nil
}

func (e *Event) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	var idx uint32
	if sum, err := sr.Uint32(r, &idx); err != nil {
		return sum, err
	}
	e.Index = uint16(idx)
	if sum, err := sr.Address(r, &e.Contract); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &e.Name); err != nil {
		return sum, err
	}
	var Len uint32
	if sum, err := sr.Uint32(r, &Len); err != nil {
		return sum, err
	}
	e.Attrs = make([]EventAttr, Len)
	for i := range e.Attrs {
		if sum, err := sr.String(r, &e.Attrs[i].Key); err != nil {
			return sum, err
		}
		if sum, err := sr.String(r, &e.Attrs[i].Value); err != nil {
			return sum, err
		}
	}
	return sr.Sum(), nil
}
