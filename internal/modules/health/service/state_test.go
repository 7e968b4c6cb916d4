package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReady(t *testing.T) {
	s := NewState()
	assert.False(t, s.Ready())

	s.SetWSConnected(true)
	assert.False(t, s.Ready()) // тиков ещё не было

	s.MarkTick()
	assert.True(t, s.Ready())
	assert.False(t, s.LastTick().IsZero())

	s.SetWSConnected(false)
	assert.False(t, s.Ready())
}
