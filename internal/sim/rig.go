package sim

import (
	"go.trai.ch/tether/field"
	"go.trai.ch/zerr"
)

// Link names accepted by swap, detach and attach steps.
const (
	LinkProbe = "probe"
	LinkGauge = "gauge"
)

// Gauge is the leaf of the demo object graph; bindings write readings into it.
type Gauge struct {
	Reading float64
}

// Probe is the intermediate link of the demo object graph. Scenarios replace
// or detach it to exercise re-homing.
type Probe struct {
	Gauge *Gauge
}

// Rig is the root of the demo object graph bindings are targeted at.
type Rig struct {
	Probe *Probe
}

var (
	probePath = field.MustPathFor[*Rig]("Probe")
	gaugePath = field.MustPathFor[*Rig]("Probe", "Gauge")
)

// NewRig creates a rig with a full probe chain, or with the probe link absent
// when detached is set.
func NewRig(detached bool) *Rig {
	if detached {
		return &Rig{}
	}
	return &Rig{Probe: &Probe{Gauge: &Gauge{}}}
}

// SwapLink replaces the named link with a fresh object chain and returns the
// dotted path of the replaced link. The mutation goes through the field
// package, so a swap below an absent link is silently skipped like any other
// write across a broken path.
func (r *Rig) SwapLink(link string) (string, error) {
	switch link {
	case LinkProbe:
		_, err := field.Write(r, probePath, &Probe{Gauge: &Gauge{}})
		return probePath.String(), err
	case LinkGauge:
		_, err := field.Write(r, gaugePath, &Gauge{})
		return gaugePath.String(), err
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownLink, "swap link"), "link", link)
	}
}

// DetachLink sets the named link to nil and returns its dotted path.
func (r *Rig) DetachLink(link string) (string, error) {
	switch link {
	case LinkProbe:
		_, err := field.Write(r, probePath, (*Probe)(nil))
		return probePath.String(), err
	case LinkGauge:
		_, err := field.Write(r, gaugePath, (*Gauge)(nil))
		return gaugePath.String(), err
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownLink, "detach link"), "link", link)
	}
}
