// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the bakery ordering system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - FeeCalculator: A pure service computing delivery fees from distance tiers
//   - PartnerDispatcher: A domain service selecting the best delivery partner
//
// Domain services coordinate between aggregates and value objects, implementing
// business logic that spans multiple parts of the model following
// Domain-Driven Design principles.
package services
