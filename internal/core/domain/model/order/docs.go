// Package order contains the Order aggregate and its value objects: the
// lifecycle status state machine, delivery method and payment status
// enumerations, line items snapshotted at order time, monetary charges, and
// the append-only activity log.
//
// The aggregate owns every mutation of an order after checkout. Status
// changes go through ChangeStatus, which enforces the lifecycle transition
// graph and records one activity entry per applied change. Orders are never
// deleted; Delivered and Cancelled are the terminal states.
package order
