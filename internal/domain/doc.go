// Package domain contains the core business entities, value objects, and
// domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// The central entity is the Activity: a named extracurricular offering with
// a participant list keyed by student email.
package domain
