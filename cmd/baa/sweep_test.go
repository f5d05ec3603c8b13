package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/baamageddon/internal/aabb"
)

func TestParseBox(t *testing.T) {
	b, err := parseBox("1.5, -2, 10, 4")
	require.NoError(t, err)
	assert.Equal(t, aabb.New(aabb.V(1.5, -2), aabb.V(10, 4)), b)

	_, err = parseBox("1,2,3")
	assert.Error(t, err)
	_, err = parseBox("0,0,-1,1")
	assert.Error(t, err)
	_, err = parseBox("0,0,x,1")
	assert.Error(t, err)
}

func TestDescribeSweep(t *testing.T) {
	a, err := parseBox("0,0,10,10")
	require.NoError(t, err)
	b, err := parseBox("-30,0,5,5")
	require.NoError(t, err)
	d, err := parseVec("40,0")
	require.NoError(t, err)

	out := describe(a, b, d)
	assert.Contains(t, out, "overlap  hit=false")
	assert.Contains(t, out, "sweep    hit=true  pos=(-15, 0)")
	assert.Contains(t, out, "segment  hit=true  t=0.375")
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("0.0.0.0:2222"))
	assert.Equal(t, "nonsense", portOf("nonsense"))
}
