// Package repository handles all interactions with the backing store.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// user records, abstracting SQL logic away from the service layer. The
// UserStore interface has two implementations: the pgx-backed
// UserRepository and an in-memory MemoryUserRepository usable for
// tests and single-process setups.
package repository
