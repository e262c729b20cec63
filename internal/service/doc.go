// Package service implements the business logic between the HTTP layer
// and the entity stores.
package service
