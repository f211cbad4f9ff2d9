// Package order contains the Order aggregate and its status state machine.
//
// An Order is created in pending status and moves along a fixed directed
// path, one step at a time:
//
//	pending ──> paid ──> shipped ──> delivered
//
// No other edge exists: statuses never move backwards, never skip a step,
// never transition to themselves, and delivered is terminal. The aggregate
// owns every mutation of its status; callers cannot put an order into an
// illegal state.
package order
