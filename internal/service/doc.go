// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the activity
// registry (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. ActivityService:
//   - Lists the activity catalog
//   - Signs students up for activities and unregisters them
//   - Emits an events.ActivityEvent after every successful change
//
// 2. Error Handling:
//   - Translate store and domain errors to the service sentinels
//     (ErrActivityNotFound, ErrAlreadySignedUp, ErrNotRegistered)
//   - Wrap anything unexpected in ActivityServiceError
//
// The service layer depends on domain entities and the store interface,
// never on a specific store implementation.
package service
