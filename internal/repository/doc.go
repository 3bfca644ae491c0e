// Package repository provides the persistence layer over SurrealDB.
//
// Users and clubs are the only stored records. A club is one document
// carrying its full membership ledger and artifact collections; the
// repository loads it whole and saves it whole under a version check.
package repository
