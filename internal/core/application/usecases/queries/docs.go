// Package queries contains read-only operations over orders and kitchen tickets.
// Query handlers never take aggregate locks; repositories hand out copies, so a
// reader never observes a half-applied update.
package queries
