// Package ted computes structural diffs between syntax trees ("tree
// edit diff").
//
// Diff compares two trees and returns a TreeDiff: a set of element
// replacements, element deletions, and positioned batch insertions
// which, applied to the first tree, reproduce the second tree's
// structure and text exactly. Apply performs that application,
// producing a new tree that shares unchanged subtrees with the input.
//
// The computation has three stages. First the trees are projected
// into comparison nodes and aligned per sibling level by package
// align, yielding a raw nested insert/remove/replace script. Then the
// script is normalized bottom-up into TreeEdits: no-op replacements
// collapse to Same, adjacent remove/insert pairs fuse into a single
// replacement, runs of single insertions coalesce into batches, and a
// batch at the head of a sequence is re-anchored to the parent. Last,
// the normalized script is walked in lock-step with the two child
// sequences to emit the diff.
//
// Insertion positions reference elements of the original tree only,
// never elements of the target tree or of other insertions, so every
// position is computable before any edit is applied and stays valid
// under any application order.
package ted
