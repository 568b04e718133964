// Package errors provides structured error handling for the adventure engine.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid slot index: %d", idx)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // fall back to a fresh default state
//	}
//
// Layer guidelines:
//
// Repository layer returns NotFound/AlreadyExists for missing or duplicate
// records, DataLoss for corrupt persisted blobs, and wraps storage failures
// as Internal. Orchestrators validate inputs with InvalidArgument and check
// preconditions with FailedPrecondition. Game-rule rejections (insufficient
// gold, wrong binding, slot occupied) are not Go errors at all; they surface
// as {Success: false, Message: ...} results so the caller stays responsive.
package errors
