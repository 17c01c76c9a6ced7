// Package vehicle defines the dashboard's data model and the pure rules that
// classify it.
//
// Health values are 0-100 numbers describing how much useful life a subsystem
// has left. They fall into three tiers:
//
//	high    value > 70
//	medium  40 < value <= 70
//	low     value <= 40 (including negatives and NaN)
//
// The overall Status is derived from brake pad life, battery health and oil
// quality: any one of them in critical range makes the vehicle critical, any
// one in warning range makes it a warning, otherwise it is good.
//
// The historical sensor fixture is static and never changes at runtime.
package vehicle
