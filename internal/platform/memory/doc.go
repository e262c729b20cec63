// Package memory provides process-local, mutex-guarded implementations of
// the store interfaces. All state lives for the process lifetime only and
// is lost on restart.
package memory
