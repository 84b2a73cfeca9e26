package bin

import (
	"io"
	"math/big"

	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/common/amount"
)

// SumWriter accumulates the written size across field writes
type SumWriter struct {
	sum int64
}

func NewSumWriter() *SumWriter {
	return &SumWriter{}
}

func (sw *SumWriter) add(n int64, err error) (int64, error) {
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) Uint8(w io.Writer, v uint8) (int64, error) {
	return sw.add(WriteUint8(w, v))
}

func (sw *SumWriter) Uint32(w io.Writer, v uint32) (int64, error) {
	return sw.add(WriteUint32(w, v))
}

func (sw *SumWriter) Uint64(w io.Writer, v uint64) (int64, error) {
	return sw.add(WriteUint64(w, v))
}

func (sw *SumWriter) Bytes(w io.Writer, v []byte) (int64, error) {
	return sw.add(WriteBytes(w, v))
}

func (sw *SumWriter) String(w io.Writer, v string) (int64, error) {
	return sw.add(WriteString(w, v))
}

func (sw *SumWriter) Bool(w io.Writer, v bool) (int64, error) {
	return sw.add(WriteBool(w, v))
}

func (sw *SumWriter) Address(w io.Writer, v common.Address) (int64, error) {
	return sw.add(WriteBytes(w, v[:]))
}

func (sw *SumWriter) Amount(w io.Writer, v *amount.Amount) (int64, error) {
	var bs []byte
	if v != nil {
		bs = v.Bytes()
	}
	return sw.add(WriteBytes(w, bs))
}

func (sw *SumWriter) BigInt(w io.Writer, v *big.Int) (int64, error) {
	var bs []byte
	if v != nil {
		bs = v.Bytes()
	}
	return sw.add(WriteBytes(w, bs))
}

func (sw *SumWriter) WriterTo(w io.Writer, v io.WriterTo) (int64, error) {
	return sw.add(v.WriteTo(w))
}

func (sw *SumWriter) Sum() int64 {
	return sw.sum
}

// SumReader accumulates the read size across field reads
type SumReader struct {
	sum int64
}

func NewSumReader() *SumReader {
	return &SumReader{}
}

func (sr *SumReader) Uint8(r io.Reader, p *uint8) (int64, error) {
	v, n, err := ReadUint8(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) Uint32(r io.Reader, p *uint32) (int64, error) {
	v, n, err := ReadUint32(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) Uint64(r io.Reader, p *uint64) (int64, error) {
	v, n, err := ReadUint64(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) GetUint64(r io.Reader) (uint64, int64, error) {
	v, n, err := ReadUint64(r)
	sr.sum += n
	return v, sr.sum, err
}

func (sr *SumReader) Bytes(r io.Reader, p *[]byte) (int64, error) {
	v, n, err := ReadBytes(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) String(r io.Reader, p *string) (int64, error) {
	v, n, err := ReadString(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) Bool(r io.Reader, p *bool) (int64, error) {
	v, n, err := ReadBool(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) Address(r io.Reader, p *common.Address) (int64, error) {
	v, n, err := ReadBytes(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	copy((*p)[:], v)
	return sr.sum, nil
}

func (sr *SumReader) Amount(r io.Reader, p **amount.Amount) (int64, error) {
	v, n, err := ReadBytes(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = amount.NewAmountFromBytes(v)
	return sr.sum, nil
}

func (sr *SumReader) BigInt(r io.Reader, p **big.Int) (int64, error) {
	v, n, err := ReadBytes(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = big.NewInt(0).SetBytes(v)
	return sr.sum, nil
}

func (sr *SumReader) ReaderFrom(r io.Reader, p io.ReaderFrom) (int64, error) {
	n, err := p.ReadFrom(r)
	sr.sum += n
	return sr.sum, err
}

func (sr *SumReader) Sum() int64 {
	return sr.sum
}
