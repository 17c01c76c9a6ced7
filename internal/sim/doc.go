// Package sim runs the random-walk simulation behind the dashboard.
//
// An Engine owns the vehicle state and exposes a single mutation entry point,
// Mutate. Step wraps it with the per-tick coin flip: on each tick a round runs
// with probability 0.3 (a uniform draw above 0.7). A round wears every health
// value down by a small random amount, floored at zero, and adds 0-4 km of
// mileage. Health never increases and mileage never decreases.
//
// A Ticker schedules Step on a fixed interval (3s by default) for headless
// use. Its lifecycle is a three-state machine:
//
//	idle --start--> running --stop--> stopped --start--> running
//
// The dashboard does not use Ticker; it schedules ticks through Bubble Tea so
// that mutation and rendering share the program's event loop.
package sim
