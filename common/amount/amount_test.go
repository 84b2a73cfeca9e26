package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Amount(t *testing.T) {
	a := COIN.DivC(1000)
	b := COIN.MulC(10000)
	assert.Equal(t, "0.001", a.String())
	assert.Equal(t, "10000", b.String())
	assert.Equal(t, "10000.001", a.Add(b).String())
	assert.Equal(t, "-9999.999", a.Sub(b).String())
	assert.Equal(t, "0.0000001", a.DivC(10000).String())
	assert.Equal(t, "90", a.MulC(90000).String())

	c, err := ParseAmount("10000.00121454")
	require.NoError(t, err)
	assert.Equal(t, "10000.00121454", c.String())
}

func Test_NewAmount(t *testing.T) {
	assert.Equal(t, "1000", NewAmount(0, 1000).Int.String())
	assert.Equal(t, "1000000000000000001000", NewAmount(1000, 1000).Int.String())
	assert.True(t, NewAmount(0, 0).IsZero())
	assert.True(t, NewAmount(0, 1).IsPlus())
	assert.True(t, NewAmount(0, 1).Sub(NewAmount(0, 2)).IsMinus())
}

func Test_ParseAmount(t *testing.T) {
	for _, str := range []string{"", "a", "1.", "1.2.3", "-1", "0.1234567890123456789"} {
		_, err := ParseAmount(str)
		assert.ErrorIs(t, err, ErrInvalidAmountFormat, str)
	}
	am, err := ParseBaseUnits("500000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "500000000", am.String())
	am, err = ParseBaseUnits("0x10")
	require.NoError(t, err)
	assert.Equal(t, int64(16), am.Int64())
	_, err = ParseBaseUnits("-5")
	assert.ErrorIs(t, err, ErrInvalidAmountFormat)
}

func Test_AmountJSON(t *testing.T) {
	bs, err := NewAmount(12, 500000000000000000).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(bs))
	var am Amount
	require.NoError(t, am.UnmarshalJSON(bs))
	assert.True(t, am.Equal(NewAmount(12, 500000000000000000)))
	assert.Error(t, am.UnmarshalJSON([]byte(`12`)))
}

func Test_Min(t *testing.T) {
	a := NewAmount(0, 5)
	b := NewAmount(0, 7)
	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Min(b, a).Equal(a))
}
