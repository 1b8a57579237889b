// Package channel sequences catalog episodes into a play order and runs the
// matching intro before each one starts.
package channel
