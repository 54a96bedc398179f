package platform

const unknownStr = "unknown"

// Record is the complete configuration of one build unit. Every mandatory
// family is set exactly once; the zero value is not a valid Record.
type Record struct {
	// StandardLevel is the language standard year, e.g. 1989, 1999, 2011.
	StandardLevel int
	// StandardLevelMin is the minimum that was enforced during resolution, or
	// zero when no minimum was configured.
	StandardLevelMin int

	Compiler Compiler
	CPU      CPU
	OS       OS
}

// Valid reports whether every mandatory family of r is known.
func (r Record) Valid() bool {
	return r.StandardLevel > 0 &&
		r.Compiler.Family != CompilerUnknown &&
		r.CPU.Family != CPUUnknown &&
		r.CPU.Endianness != EndianUnknown &&
		r.CPU.BitWidth > 0 &&
		r.OS.Family != OSUnknown
}
