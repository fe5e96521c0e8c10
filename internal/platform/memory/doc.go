// Package memory provides process-local implementations of the storage
// interfaces defined in the internal/store package. Data lives only as long
// as the process does.
package memory
