// Package ports defines the contracts between the application core and its
// storage adapters. Implementations return independent copies of stored
// aggregates and never hand out shared pointers.
package ports
