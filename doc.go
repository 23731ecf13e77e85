// Package planner provides the numeric engine behind the `pcp` command-line
// tool, a personal investment-planning calculator.
//
// The core functionalities include:
//   - Portfolio Model: a point-in-time snapshot of per-asset values and
//     target weights, with derived totals and weight distributions.
//   - Contribution Allocator: splitting a monthly contribution across assets
//     to close the gap to target weights using new money only, never sales,
//     with exact whole-unit remainder reconciliation.
//   - Compounding Simulators: projecting a portfolio forward month by month
//     under a fixed annual return, for constant or linearly growing
//     contribution schedules.
//   - Goal Solvers: inverting the simulators by bisection to find the
//     contribution schedule that reaches a future net-worth goal, optionally
//     net of a flat capital-gains tax at the end of the period.
//
// Every function in this package is a pure transformation of immutable
// inputs: there is no I/O, no shared state, and all loops are statically
// bounded, so concurrent use needs no locking.
package planner
