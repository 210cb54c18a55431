// Package cli implements the interactive presentation layer of the
// CampusKart client: a read-eval-print loop over the identity manager, the
// catalog store and the filter engine. It owns no marketplace state beyond
// the current filter query; every successful mutation is followed by a fresh
// recomputation of the visible item set.
package cli
