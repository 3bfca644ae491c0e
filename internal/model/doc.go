// Package model defines the domain types for ClubSphere.
//
// The central type is Club, a single aggregate document holding the
// club's identity, its Membership Ledger (role-tagged member list plus a
// disjoint pending-invitation set), and every club-scoped artifact
// collection. The aggregate is loaded and saved whole; Club.Version is
// the optimistic-concurrency token compared on write.
//
// Error responses follow RFC 9457 Problem Details (errors.go).
package model
