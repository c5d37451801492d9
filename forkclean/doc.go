// Package forkclean implements spec.md §4.6's TerminalForkCleaner:
// walking inward from every degree-1 leaf to the nearest fork (or a
// walk-budget cutoff), then deleting the traversed branch if it is a
// boundary-hugging artifact or a sharp single-bend stub.
package forkclean
