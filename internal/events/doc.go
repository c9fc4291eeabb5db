// Package events provides types and interfaces for an event-driven architecture.
//
// Services emit an ActivityEvent whenever a participant list changes, without
// knowing which handlers will process it. Handlers such as the metrics
// recorder subscribe through the InMemoryEventEmitter.
//
// The primary components are:
// - ActivityEvent: Records a signup or unregistration
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
