package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkTypeReverse(t *testing.T) {
	assert.Equal(t, LinkIsBlockedBy, LinkBlocks.Reverse())
	assert.Equal(t, LinkBlocks, LinkIsBlockedBy.Reverse())
	assert.Equal(t, LinkIsDuplicatedBy, LinkDuplicates.Reverse())
	assert.Equal(t, LinkDuplicates, LinkIsDuplicatedBy.Reverse())
	assert.Equal(t, LinkIsClonedBy, LinkClones.Reverse())
	assert.Equal(t, LinkClones, LinkIsClonedBy.Reverse())
}

func TestLinkTypeReverse_RelatesToIsSymmetric(t *testing.T) {
	assert.Equal(t, LinkRelatesTo, LinkRelatesTo.Reverse())
}

func TestLinkTypeIsValid(t *testing.T) {
	assert.True(t, LinkBlocks.IsValid())
	assert.True(t, LinkRelatesTo.IsValid())
	assert.False(t, LinkType("depends_on").IsValid())
	assert.False(t, LinkType("").IsValid())
}
