package diag

import "fmt"

// Label helpers generate the conventional display labels attached to
// allocations, mirroring what call sites would otherwise spell out by
// hand.

// ArrayLabel returns "typ[n]" for an array of n values of type typ.
func ArrayLabel(typ string, n int) string {
	return fmt.Sprintf("%s[%d]", typ, n)
}

// SizedLabel returns "uint8[n]" for a raw block of n bytes.
func SizedLabel(n int) string {
	return ArrayLabel("uint8", n)
}

// HeaderLabel returns "head+typ[n]" for a header followed by an array.
func HeaderLabel(head, typ string, n int) string {
	return fmt.Sprintf("%s+%s[%d]", head, typ, n)
}
