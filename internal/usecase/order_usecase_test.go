package usecase

import (
	"encoding/json"
	"testing"

	"kinconnect/internal/domain/garment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemInput_Member_Defaults(t *testing.T) {
	var in OrderItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Grandpa Joe","shirtType":"robot","size":"huge"}`), &in))

	m := in.Member()

	assert.Equal(t, 1, m.Quantity)
	assert.Equal(t, garment.Group(""), m.Group)
	assert.Equal(t, garment.DefaultSize, m.Size)
	assert.Equal(t, garment.SourceInferred, m.GroupChoice().Source)
}

func TestOrderItemInput_Member_ExplicitZeroQuantity(t *testing.T) {
	var in OrderItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada","shirtType":"women","quantity":0}`), &in))

	m := in.Member()

	assert.Equal(t, 0, m.Quantity)
	assert.Equal(t, garment.GroupWomen, m.Group)
}
