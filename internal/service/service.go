// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// Every operation parses its identifiers, performs exactly one
// document store call and maps store errors into HTTP errors
package service
