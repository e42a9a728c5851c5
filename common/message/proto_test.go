package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCalls(t *testing.T) {
	calls := []Call{
		{Name: "BindTexture", Ints: []int64{0x0DE1, 3}},
		{Name: "Uniform2f", Ints: []int64{1}, Floats: []float32{640, -480.5}},
		{Name: "TexImage2D", Ints: []int64{0x0DE1, 0, -1}, DataLen: 4096},
		{Name: "Finish"},
	}
	got, err := DecodeCalls(EncodeCalls(calls))
	require.NoError(t, err)
	assert.Equal(t, calls, got)
}

func TestDecodeEmpty(t *testing.T) {
	got, err := DecodeCalls(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeTruncated(t *testing.T) {
	data := EncodeCalls([]Call{{Name: "Viewport", Ints: []int64{0, 0, 800, 600}}})
	_, err := DecodeCalls(data[:len(data)-2])
	assert.Error(t, err)
}

func TestCallString(t *testing.T) {
	c := Call{Name: "Scissor", Ints: []int64{20, 510, 80, 80}}
	assert.Equal(t, "Scissor[20 510 80 80]", c.String())
	c = Call{Name: "BufferData", Ints: []int64{1}, DataLen: 20}
	assert.Equal(t, "BufferData[1]<20 bytes>", c.String())
}
