// Package scalar knows the numeric representations generated code can be
// instantiated with and the scalar type aliases that have a unit-checked
// (quantity) counterpart in tfel::config::ScalarTypes.
package scalar
