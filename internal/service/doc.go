// Package service provides the application-level operations on tasks. It sits
// between the HTTP handlers and the task store, logs each operation and
// publishes lifecycle events after successful mutations.
package service
