// Package store defines the interfaces for entity storage and the shared
// error taxonomy returned by implementations.
package store
