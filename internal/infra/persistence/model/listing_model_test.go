package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_Value(t *testing.T) {
	v, err := StringSlice{"CCTV", "Covered"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["CCTV","Covered"]`, v)

	v, err = StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringSlice_Scan(t *testing.T) {
	var s StringSlice
	require.NoError(t, s.Scan([]byte(`["EV"]`)))
	assert.Equal(t, StringSlice{"EV"}, s)

	require.NoError(t, s.Scan(`[]`))
	assert.Empty(t, s)

	require.NoError(t, s.Scan(nil))
	assert.NotNil(t, s)
	assert.Empty(t, s)

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("not json"))
}
