package npm

import (
	"errors"
	"fmt"

	"npmtui/app/project"
)

// Destination selects which manifest group an installed dependency is saved
// to. It maps one-to-one onto npm's --save-* flags.
type Destination string

const (
	DestRegular  Destination = "regular"
	DestDev      Destination = "dev"
	DestPeer     Destination = "peer"
	DestBundle   Destination = "bundle"
	DestOptional Destination = "optional"
)

// Destinations lists every valid destination in display order.
var Destinations = []Destination{DestRegular, DestDev, DestPeer, DestBundle, DestOptional}

// ErrUnknownDestination indicates a destination value outside the known set.
// This is a programming-defect class error: it fails loudly before any
// process is launched instead of silently defaulting.
var ErrUnknownDestination = errors.New("unknown install destination")

// Flag returns the npm save flag for the destination. The regular
// destination installs without a flag.
func (d Destination) Flag() (string, error) {
	switch d {
	case DestRegular:
		return "", nil
	case DestDev:
		return "--save-dev", nil
	case DestPeer:
		return "--save-peer", nil
	case DestBundle:
		return "--save-bundle", nil
	case DestOptional:
		return "--save-optional", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDestination, string(d))
	}
}

// Next cycles to the following destination; used by the settings screen.
func (d Destination) Next() Destination {
	for i, cand := range Destinations {
		if cand == d {
			return Destinations[(i+1)%len(Destinations)]
		}
	}
	return DestRegular
}

// ParseDestination validates a free-form string (flag value, config file
// entry) into a Destination.
func ParseDestination(s string) (Destination, error) {
	d := Destination(s)
	if _, err := d.Flag(); err != nil {
		return "", err
	}
	return d, nil
}

// GroupFlag returns the save flag matching the manifest group a dependency
// was declared in, so uninstall prunes the right section.
func GroupFlag(g project.DependencyGroup) (string, error) {
	switch g {
	case project.GroupRegular:
		return DestRegular.Flag()
	case project.GroupDev:
		return DestDev.Flag()
	case project.GroupPeer:
		return DestPeer.Flag()
	case project.GroupBundle:
		return DestBundle.Flag()
	case project.GroupOptional:
		return DestOptional.Flag()
	default:
		return "", fmt.Errorf("%w: dependency group %q", ErrUnknownDestination, string(g))
	}
}
