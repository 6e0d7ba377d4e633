// Package align computes edit scripts between ordered labeled
// forests.
//
// Siblings are compared by their discriminant only: two nodes pair
// when their discriminants are equal, and a paired Replace recurses
// into the pair's children. Content below the immediate level never
// influences pairing at this level; differences deeper down surface
// through the recursion. Every node weighs the same toward edit cost.
//
// The implementation interns each sibling's discriminant into a rune
// and aligns the two rune sequences with sergi/go-diff, which yields
// a minimal insert/remove script per level. Any other ordered-tree
// alignment with the same output shape is a valid substitute.
package align
