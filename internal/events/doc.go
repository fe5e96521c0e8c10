// Package events provides in-process publication of task lifecycle events.
//
// The task service emits an event after every successful mutation; handlers
// registered on the emitter (the audit logger by default) react to them
// without the service knowing who is listening.
//
// The primary components are:
// - TaskEvent: a snapshot of a created, updated or deleted task
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
package events
