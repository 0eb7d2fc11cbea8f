// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives bound
// request data from the handler, applies the domain rules (trimming,
// required fields, email format, partial-update merging, list query
// normalization), and calls store methods to interact with the data.
package service
