// Package partner contains the DeliveryPartner aggregate: the people who
// carry home delivery orders. A partner toggles between online and offline,
// accumulates a performance score, and tracks the orders currently assigned
// to them. Partners are created via onboarding and never deleted.
package partner
