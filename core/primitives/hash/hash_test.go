package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type content struct {
	Text   string
	Repair bool
}

func TestComputeStable(t *testing.T) {
	a, err := Compute(content{Text: `{"x":1}`, Repair: true})
	require.NoError(t, err)
	b, err := Compute(content{Text: `{"x":1}`, Repair: true})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestComputeDiffers(t *testing.T) {
	a, err := Compute(content{Text: `{"x":1}`, Repair: true})
	require.NoError(t, err)
	b, err := Compute(content{Text: `{"x":2}`, Repair: true})
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	c, err := Compute(content{Text: `{"x":1}`, Repair: false})
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestFmt(t *testing.T) {
	require.Len(t, Fmt(0), 16)
	require.Equal(t, "00000000000000ff", Fmt(255))
}
