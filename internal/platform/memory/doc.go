// Package memory provides the in-process implementation of store.ActivityStore.
//
// The registry lives for the lifetime of the process: it is seeded once at
// startup (from the built-in catalog or a YAML seed file) and is never
// persisted. A single RWMutex serializes mutations, so every signup and
// unregister is an atomic check-then-mutate step.
package memory
