package mapdata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmara/gridforge/mapdata"
)

func TestNewID_Stable(t *testing.T) {
	a := mapdata.NewID("demo", 7)
	b := mapdata.NewID("demo", 7)
	assert.Equal(t, a, b, "same definition and seed derive the same map ID")

	assert.NotEqual(t, a, mapdata.NewID("demo", 8))
	assert.NotEqual(t, a, mapdata.NewID("other", 7))
}

func TestMapData_DebugFieldsOmitted(t *testing.T) {
	md := mapdata.MapData{Name: "m", Width: 4, Height: 4}
	raw, err := json.Marshal(md)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "graph")
	assert.NotContains(t, decoded, "issues")
	assert.Contains(t, decoded, "terrain")
}
