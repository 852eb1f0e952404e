// Package directory turns tab separated "name<TAB>number" input into a
// directory of validated entries ordered by phone number.
//
// Lines whose number cannot be normalized are dropped without failing the
// run. Malformed lines (no tab separator) and I/O failures are returned as
// errors.
package directory
