package dbusevents

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"

	"github.com/wrale/wfthermald/internal/thermalctl"
)

func TestProfileFromBodyMapVariant(t *testing.T) {
	body := []interface{}{
		"net.hadess.PowerProfiles",
		map[string]dbus.Variant{
			"ActiveProfile": dbus.MakeVariant("performance"),
		},
		[]string{},
	}

	p, ok := profileFromBody(body)
	assert.True(t, ok)
	assert.Equal(t, thermalctl.Performance, p)
}

func TestProfileFromBodyPlainString(t *testing.T) {
	body := []interface{}{"switched to power-saver"}
	p, ok := profileFromBody(body)
	assert.True(t, ok)
	assert.Equal(t, thermalctl.PowerSaver, p)
}

func TestProfileFromBodyNoMatch(t *testing.T) {
	body := []interface{}{"unrelated change", 42}
	_, ok := profileFromBody(body)
	assert.False(t, ok)
}
