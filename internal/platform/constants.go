package platform

// Kind is the value type of a Constant.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindString
)

// Group names used by Constant.Group.
const (
	GroupStandard = "standard"
	GroupCompiler = "compiler"
	GroupCPU      = "cpu"
	GroupOS       = "os"
	GroupIdentity = "identity"
)

// Constant is one named fact of the public vocabulary.
type Constant struct {
	Name  string
	Group string
	Kind  Kind
	Bool  bool
	Int   int64
	Str   string
}

// Value returns the constant as bool, int64 or string.
func (c Constant) Value() any {
	switch c.Kind {
	case KindBool:
		return c.Bool
	case KindInt:
		return c.Int
	default:
		return c.Str
	}
}

func boolConst(group, name string, v bool) Constant {
	return Constant{Name: name, Group: group, Kind: KindBool, Bool: v}
}

func intConst(group, name string, v int64) Constant {
	return Constant{Name: name, Group: group, Kind: KindInt, Int: v}
}

func strConst(group, name, v string) Constant {
	return Constant{Name: name, Group: group, Kind: KindString, Str: v}
}

var compilerConstNames = map[CompilerFamily]string{
	CompilerIntel:  "COMPILER_INTEL",
	CompilerComeau: "COMPILER_COMEAU",
	CompilerSun:    "COMPILER_SUN",
	CompilerClang:  "COMPILER_CLANG",
	CompilerGCC:    "COMPILER_GCC",
	CompilerMSVC:   "COMPILER_MSVC",
}

var cpuConstNames = map[CPUFamily]string{
	CPUX8664:   "CPU_X86_64",
	CPUX8632:   "CPU_X86_32",
	CPUSparc64: "CPU_SPARC_64",
	CPUSparc32: "CPU_SPARC_32",
}

var osConstNames = map[OSFamily]string{
	OSMacOS:     "OS_MACOS",
	OSFreeBSD:   "OS_FREEBSD",
	OSNetBSD:    "OS_NETBSD",
	OSOpenBSD:   "OS_OPENBSD",
	OSDragonFly: "OS_DRAGONFLY",
	OSLinux:     "OS_LINUX",
	OSSolaris:   "OS_SOLARIS",
	OSSunOS:     "OS_SUNOS",
	OSWindows:   "OS_WINDOWS",
}

// Constants renders r as the ordered constant vocabulary. Every family flag is
// present with an explicit true/false value so emitters can decide whether to
// skip false flags. STANDARD_LEVEL_MIN is only present when a minimum was
// configured and RECORD_ID only when id is non-empty.
func (r Record) Constants(id string) []Constant {
	out := make([]Constant, 0, 48)

	out = append(out, intConst(GroupStandard, "STANDARD_LEVEL", int64(r.StandardLevel)))
	if r.StandardLevelMin > 0 {
		out = append(out, intConst(GroupStandard, "STANDARD_LEVEL_MIN", int64(r.StandardLevelMin)))
	}

	for _, f := range CompilerFamilies {
		out = append(out, boolConst(GroupCompiler, compilerConstNames[f], r.Compiler.Family == f))
	}
	out = append(out,
		boolConst(GroupCompiler, "COMPILER_MIMICS_CLANG", r.Compiler.Mimics.Has(MimicClang)),
		boolConst(GroupCompiler, "COMPILER_MIMICS_GCC", r.Compiler.Mimics.Has(MimicGCC)),
		boolConst(GroupCompiler, "COMPILER_MIMICS_MSVC", r.Compiler.Mimics.Has(MimicMSVC)),
		strConst(GroupCompiler, "COMPILER_NAME", r.Compiler.Name),
		intConst(GroupCompiler, "COMPILER_VERSION", r.Compiler.Version),
	)

	for _, f := range CPUFamilies {
		out = append(out, boolConst(GroupCPU, cpuConstNames[f], r.CPU.Family == f))
	}
	out = append(out,
		boolConst(GroupCPU, "CPU_X86", r.CPU.Family.IsX86()),
		boolConst(GroupCPU, "CPU_SPARC", r.CPU.Family.IsSparc()),
		intConst(GroupCPU, "BIT_WIDTH", int64(r.CPU.BitWidth)),
		boolConst(GroupCPU, "BITS_64", r.CPU.Is64Bit()),
		boolConst(GroupCPU, "BITS_32", r.CPU.Is32Bit()),
		boolConst(GroupCPU, "BITS_16", r.CPU.Is16Bit()),
		boolConst(GroupCPU, "ENDIAN_LITTLE", r.CPU.Endianness == EndianLittle),
		boolConst(GroupCPU, "ENDIAN_BIG", r.CPU.Endianness == EndianBig),
	)

	for _, f := range OSFamilies {
		out = append(out, boolConst(GroupOS, osConstNames[f], r.OS.Family == f))
	}
	out = append(out,
		boolConst(GroupOS, "OS_SUN", r.OS.Family.IsSun()),
		strConst(GroupOS, "OS_NAME", r.OS.Name),
		boolConst(GroupOS, "PLATFORM_UNIX", r.OS.Capabilities.Has(CapUnix)),
		boolConst(GroupOS, "PLATFORM_BSD", r.OS.Capabilities.Has(CapBSD)),
		boolConst(GroupOS, "PLATFORM_SVR4", r.OS.Capabilities.Has(CapSVR4)),
		boolConst(GroupOS, "PLATFORM_WINDOWS", r.OS.Capabilities.Has(CapWindows)),
	)

	if id != "" {
		out = append(out, strConst(GroupIdentity, "RECORD_ID", id))
	}
	return out
}
