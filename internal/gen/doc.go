// Package gen provides deterministic C/C++ code generation for material
// properties.
//
// Generation approach uses text/template for the artifact skeleton and a
// line writer for function bodies. Emission is a pure function of the
// description, its provenance and an InterfaceConfig: the same inputs
// always produce byte-identical artifacts.
//
// Codegen patterns:
//   - Signature planning per representation, with quantity overloads
//   - Generic template plus specializations for laws without inputs
//   - Bound checks returning -position (physical) or +position (standard)
//   - Failure sentinel: exceptions, errno and non-finite results return NaN
//   - Metadata symbols with C linkage
package gen
