// Package platform defines the configuration record produced by the resolvers:
// the language-standard level, compiler identity, CPU identity and OS identity
// of one build unit, together with the fixed constant vocabulary that emitters
// render from it.
//
// A Record is a plain value. Once resolved it is copied, never mutated, so every
// consumer observes the same facts for the lifetime of a build.
package platform
