// Package syntax provides an immutable, ordered, labeled tree of
// elements for representing concrete syntax.
//
// An Element is either a node (a kind plus an ordered sequence of
// child elements) or a token (a kind plus literal text). Elements are
// immutable after construction and compare by pointer identity, so
// subtrees can be shared between trees freely. A tree built
// losslessly (trivia kept as tokens) reproduces its source text
// exactly via Text.
//
// Elements carry no parent pointer: a shared subtree may appear under
// several parents at once. Positional information is derived by
// walking from a root, see Spans and Path.
package syntax
