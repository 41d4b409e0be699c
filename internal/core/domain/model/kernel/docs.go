// Package kernel contains the shared value objects of the bakeshop domain:
// identifiers for orders and delivery partners, and geographic points with
// great-circle distance calculation. All types are immutable and must be
// created through their constructor functions; zero values fail validation.
package kernel
