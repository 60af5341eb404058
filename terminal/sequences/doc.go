// Package sequences groups the value types for recognized control
// sequences. Each subpackage holds the command struct the parser emits
// for that sequence family.
package sequences
