// Package service implements the business rules of ClubSphere.
//
// Every club-scoped operation follows the same shape: load the club
// aggregate fresh, check the caller against its membership ledger,
// mutate in memory, and save the whole document back under the version
// check. Authorization is never derived from the token or from
// middleware state.
package service
