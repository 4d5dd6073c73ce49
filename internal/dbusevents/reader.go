// Package dbusevents reads power-profile changes from the system bus.
// Grounded on the abstract "line-producing pipe with a single latch" event
// model in spec.md §9, given a concrete transport here via godbus/dbus.
package dbusevents

import (
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"

	"github.com/wrale/wfthermald/internal/thermalctl"
)

const (
	powerProfilesDest = "net.hadess.PowerProfiles"
	powerProfilesPath = dbus.ObjectPath("/net/hadess/PowerProfiles")
)

// Reader subscribes to PropertiesChanged signals for ActiveProfile and
// forwards parsed Profile values on Changes.
type Reader struct {
	conn    *dbus.Conn
	log     *zap.Logger
	Changes chan thermalctl.Profile
}

// New connects to the system bus and arms the PropertiesChanged match
// rule. On connection failure it returns an error; the caller logs it and
// continues on the current profile without further external switches, per
// spec.md §7.
func New(log *zap.Logger) (*Reader, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, err
	}

	call := conn.BusObject().Call(
		"org.freedesktop.DBus.AddMatch", 0,
		"type='signal',interface='org.freedesktop.DBus.Properties',member='PropertiesChanged',path='"+string(powerProfilesPath)+"'",
	)
	if call.Err != nil {
		conn.Close()
		return nil, call.Err
	}

	r := &Reader{
		conn:    conn,
		log:     log.With(zap.String("component", "dbusevents")),
		Changes: make(chan thermalctl.Profile, 1),
	}

	signals := make(chan *dbus.Signal, 10)
	conn.Signal(signals)

	go r.forward(signals)

	return r, nil
}

// InitialProfile queries ActiveProfile synchronously. On any failure it
// returns (Balanced, false): the caller should treat false as "use the
// default", per spec.md §4.5.
func (r *Reader) InitialProfile() (thermalctl.Profile, bool) {
	obj := r.conn.Object(powerProfilesDest, powerProfilesPath)
	var variant dbus.Variant
	err := obj.Call("org.freedesktop.DBus.Properties.Get", 0, powerProfilesDest, "ActiveProfile").Store(&variant)
	if err != nil {
		return thermalctl.Balanced, false
	}

	s, ok := variant.Value().(string)
	if !ok {
		return thermalctl.Balanced, false
	}

	p, ok := thermalctl.ParseProfile(s)
	if !ok {
		return thermalctl.Balanced, false
	}
	return p, true
}

// forward decodes PropertiesChanged signal bodies and pushes parsed
// profiles onto Changes until the signal channel closes.
func (r *Reader) forward(signals chan *dbus.Signal) {
	defer close(r.Changes)

	for sig := range signals {
		if sig.Name != "org.freedesktop.DBus.Properties.PropertiesChanged" {
			continue
		}

		profile, ok := profileFromBody(sig.Body)
		if !ok {
			continue
		}

		select {
		case r.Changes <- profile:
		default:
		}
	}
}

// profileFromBody scans a PropertiesChanged signal body for a value
// containing one of the three known profile tokens.
func profileFromBody(body []interface{}) (thermalctl.Profile, bool) {
	for _, arg := range body {
		switch v := arg.(type) {
		case string:
			if p, ok := thermalctl.ParseProfile(v); ok {
				return p, true
			}
		case map[string]dbus.Variant:
			if variant, ok := v["ActiveProfile"]; ok {
				if s, ok := variant.Value().(string); ok {
					if p, ok := thermalctl.ParseProfile(s); ok {
						return p, true
					}
				}
			}
		}
	}
	return "", false
}

// Close releases the bus connection.
func (r *Reader) Close() error {
	return r.conn.Close()
}
