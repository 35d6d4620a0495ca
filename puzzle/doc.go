// Package puzzle holds the types shared by every daily solver: the Answer
// a solver produces, the Solver signature, and a Registry that maps a day
// number to its solver.
//
// Solvers are pure functions of their input lines. They receive a
// context.Context so long reductions can be cancelled and so the
// caller's logger (see internal/ctxlog) reaches the solver.
package puzzle
