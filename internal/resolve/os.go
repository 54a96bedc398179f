package resolve

import (
	"github.com/specialistvlad/platformid/internal/markers"
	"github.com/specialistvlad/platformid/internal/platform"
)

type osRule struct {
	family platform.OSFamily
	caps   platform.Capability
	match  func(markers.Set) bool
}

var (
	isSun  = anyOf("__sun", "sun")
	isSVR4 = anyOf("__SVR4", "__svr4__")
)

// osRules is evaluated top-down; Apple's toolchain is checked before the
// generic BSDs and the Sun branch splits on the SVR4 markers.
var osRules = []osRule{
	{platform.OSMacOS, platform.CapBSD | platform.CapUnix, func(s markers.Set) bool {
		return s.Defined("__APPLE__") && s.Defined("__MACH__")
	}},
	{platform.OSFreeBSD, platform.CapBSD | platform.CapUnix, anyOf("__FreeBSD__")},
	{platform.OSNetBSD, platform.CapBSD | platform.CapUnix, anyOf("__NetBSD__")},
	{platform.OSOpenBSD, platform.CapBSD | platform.CapUnix, anyOf("__OpenBSD__")},
	{platform.OSDragonFly, platform.CapBSD | platform.CapUnix, anyOf("__DragonFly__")},
	{platform.OSLinux, platform.CapUnix, anyOf("__linux", "__linux__")},
	{platform.OSSolaris, platform.CapSVR4 | platform.CapUnix, allOf(isSun, isSVR4)},
	{platform.OSSunOS, platform.CapBSD | platform.CapUnix, allOf(isSun, noneOf("__SVR4", "__svr4__"))},
	{platform.OSWindows, platform.CapWindows, anyOf("_WIN64", "_WIN32")},
}

// OS identifies the OS family of set and its capability classes.
//
// After the primary match, stray BSD and SVR4 markers are unioned in, and the
// Unix class is added whenever BSD, SVR4 or a generic unix marker holds.
func OS(set markers.Set) (platform.OS, error) {
	for _, rule := range osRules {
		if !rule.match(set) {
			continue
		}
		caps := rule.caps
		if set.Defined("__bsdi__") {
			caps |= platform.CapBSD
		}
		if isSVR4(set) {
			caps |= platform.CapSVR4
		}
		if caps.Has(platform.CapBSD) || caps.Has(platform.CapSVR4) ||
			set.Any("__unix", "__unix__", "unix") {
			caps |= platform.CapUnix
		}
		return platform.OS{
			Family:       rule.family,
			Name:         rule.family.String(),
			Capabilities: caps,
		}, nil
	}
	return platform.OS{}, unsupported(CategoryOS, "unrecognized/unsupported OS")
}
