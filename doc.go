// Package stockledger implements a single-user inventory ledger: it tracks
// stock keeping units (quantity, price, category), records sales against
// them, and keeps an append-only activity journal.
//
// The [Ledger] owns the in-memory item collection and the revenue total, the
// [Store] persists them as flat files, and the [Book] binds both with the
// [Journal] so every mutating operation is saved and logged before it
// returns.
package stockledger
