// Package config defines the format-agnostic profile model and the Loader
// interface through which profile files are read.
//
// A profile names one build unit and says where its marker set comes from: a
// saved macro dump, a host compiler to probe, inline definitions, or a mix of
// a base source overlaid with definitions. Concrete loaders, such as the HCL
// one, live in separate packages.
package config
