package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FieldReservationService/pkg/ptr"
)

func TestWindowKind_IsValid(t *testing.T) {
	assert.True(t, WindowAvailable.IsValid())
	assert.True(t, WindowBlocked.IsValid())
	assert.True(t, WindowSpecial.IsValid())
	assert.False(t, WindowKind("open").IsValid())
}

func TestCalendarWindow_AppliesTo(t *testing.T) {
	global := &CalendarWindow{}
	bound := &CalendarWindow{FieldID: ptr.Ptr(int64(3))}

	assert.True(t, global.IsGlobal())
	assert.True(t, global.AppliesTo(7))
	assert.True(t, bound.AppliesTo(3))
	assert.False(t, bound.AppliesTo(7))
}

func TestField_AllowsPlayers(t *testing.T) {
	unlimited := &Field{}
	small := &Field{MaxPlayers: ptr.Ptr(10)}

	assert.True(t, unlimited.AllowsPlayers(100))
	assert.True(t, small.AllowsPlayers(10))
	assert.False(t, small.AllowsPlayers(11))
}
