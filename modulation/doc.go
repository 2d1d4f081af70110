// Package modulation implements the fixed modulation-reach table used to
// pick a format for a lightpath and the slot width it needs once chosen.
package modulation
