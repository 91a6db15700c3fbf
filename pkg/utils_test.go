package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchAny(t *testing.T) {
	patterns := []string{"bat*", "ac*", "mains"}

	assert.True(t, MatchAny("BAT0", patterns))
	assert.True(t, MatchAny("ACAD", patterns))
	assert.True(t, MatchAny("Mains", patterns))
	assert.False(t, MatchAny("mains2", patterns))
	assert.False(t, MatchAny("hidpp_battery_0", patterns))
	assert.False(t, MatchAny("usb", nil))
}
