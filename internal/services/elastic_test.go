package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWildcardPattern(t *testing.T) {
	assert.Equal(t, "*pix*", wildcardPattern("pix"))
	assert.Equal(t, "*galaxy s24*", wildcardPattern("galaxy s24"))

	// les métacaractères du terme sont neutralisés
	assert.Equal(t, `*\**`, wildcardPattern("*"))
	assert.Equal(t, `*\?*`, wildcardPattern("?"))
	assert.Equal(t, `*\\\**`, wildcardPattern(`\*`))
}
