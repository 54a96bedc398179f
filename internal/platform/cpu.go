package platform

// CPUFamily is the single CPU identity of the target.
type CPUFamily uint8

const (
	CPUUnknown CPUFamily = iota
	CPUX8664
	CPUX8632
	CPUSparc64
	CPUSparc32
)

// CPUFamilies lists every known CPU family.
var CPUFamilies = []CPUFamily{CPUX8664, CPUX8632, CPUSparc64, CPUSparc32}

// String returns the display name of the family.
func (f CPUFamily) String() string {
	switch f {
	case CPUX8664:
		return "x86-64"
	case CPUX8632:
		return "x86-32"
	case CPUSparc64:
		return "SPARC-64"
	case CPUSparc32:
		return "SPARC-32"
	default:
		return unknownStr
	}
}

// IsX86 reports whether f belongs to the x86 group, 32 or 64 bit.
func (f CPUFamily) IsX86() bool {
	return f == CPUX8664 || f == CPUX8632
}

// IsSparc reports whether f belongs to the SPARC group, 32 or 64 bit.
func (f CPUFamily) IsSparc() bool {
	return f == CPUSparc64 || f == CPUSparc32
}

// Endianness is the byte order of the target.
type Endianness uint8

const (
	EndianUnknown Endianness = iota
	EndianLittle
	EndianBig
)

// String returns "little" or "big".
func (e Endianness) String() string {
	switch e {
	case EndianLittle:
		return "little"
	case EndianBig:
		return "big"
	default:
		return unknownStr
	}
}

// CPU is the architecture slice of a Record. BitWidth and Endianness are fixed
// properties of Family.
type CPU struct {
	Family     CPUFamily
	BitWidth   int
	Endianness Endianness
}

// Is64Bit reports whether pointers are 64 bits wide.
func (c CPU) Is64Bit() bool { return c.BitWidth == 64 }

// Is32Bit reports whether pointers are 32 bits wide.
func (c CPU) Is32Bit() bool { return c.BitWidth == 32 }

// Is16Bit reports whether pointers are 16 bits wide.
func (c CPU) Is16Bit() bool { return c.BitWidth == 16 }
