// Package sip provides the financial projection engine behind the investment
// dashboard calculators. It is designed to be small, exact and auditable: every
// amount is a decimal and nothing is rounded before it is displayed.
//
// The core functionalities include:
//   - Annuity Math: future value of a periodic contribution series and its
//     inverse, the contribution required to reach a target amount.
//   - Projection Series: a month by month (or year by year) projection of the
//     contributions and their value, suitable for charting.
//   - Calculator State: a snapshot of the user's inputs and results, cached in
//     a key-value Store under a caller supplied key.
//   - Projection Session: the operations a user interface invokes (recompute,
//     change granularity, reset), keeping the cached state in sync.
//   - Saved Plans: a named list of plans persisted in the same Store.
//
// This package serves as the foundational logic for the `sipc` command-line
// tool and its HTTP API.
package sip
