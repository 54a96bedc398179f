package platform

import "strings"

// OSFamily is the single primary OS identity of the target.
type OSFamily uint8

const (
	OSUnknown OSFamily = iota
	OSMacOS
	OSFreeBSD
	OSNetBSD
	OSOpenBSD
	OSDragonFly
	OSLinux
	OSSolaris
	OSSunOS
	OSWindows
)

// OSFamilies lists every known OS family in match order.
var OSFamilies = []OSFamily{
	OSMacOS,
	OSFreeBSD,
	OSNetBSD,
	OSOpenBSD,
	OSDragonFly,
	OSLinux,
	OSSolaris,
	OSSunOS,
	OSWindows,
}

// String returns the display name of the family.
func (f OSFamily) String() string {
	switch f {
	case OSMacOS:
		return "macOS"
	case OSFreeBSD:
		return "FreeBSD"
	case OSNetBSD:
		return "NetBSD"
	case OSOpenBSD:
		return "OpenBSD"
	case OSDragonFly:
		return "DragonFly BSD"
	case OSLinux:
		return "Linux"
	case OSSolaris:
		return "Solaris"
	case OSSunOS:
		return "SunOS"
	case OSWindows:
		return "Windows"
	default:
		return unknownStr
	}
}

// IsSun reports whether f belongs to the Sun group, Solaris or SunOS.
func (f OSFamily) IsSun() bool {
	return f == OSSolaris || f == OSSunOS
}

// Capability is an independent set of platform classes. Several may hold for
// a single OS family; macOS is both BSD-like and Unix-like.
type Capability uint8

const (
	CapUnix Capability = 1 << iota
	CapBSD
	CapSVR4
	CapWindows
)

// Has reports whether every flag in c is set.
func (s Capability) Has(c Capability) bool {
	return c != 0 && s&c == c
}

// String lists the set flags, e.g. "Unix|BSD".
func (s Capability) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(CapUnix) {
		parts = append(parts, "Unix")
	}
	if s.Has(CapBSD) {
		parts = append(parts, "BSD")
	}
	if s.Has(CapSVR4) {
		parts = append(parts, "SVR4")
	}
	if s.Has(CapWindows) {
		parts = append(parts, "Windows")
	}
	return strings.Join(parts, "|")
}

// OS is the operating-system slice of a Record.
type OS struct {
	Family       OSFamily
	Name         string
	Capabilities Capability
}
