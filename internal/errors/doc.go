// Package errors provides structured, coded errors for the generator.
//
// Errors carry a Code, a human readable message, an optional cause and
// free-form metadata:
//
//	err := errors.NotFoundf("profession %q not found", id).
//	    WithMeta("profession_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store character")
//	}
//
// # Layer-Specific Guidelines
//
// Catalog layer:
//   - Return NotFound for unknown profession, weapon, armor or kit ids
//   - Return InvalidArgument for malformed data files
//
// Generator layer:
//   - Validate options and return InvalidArgument errors
//   - Return FailedPrecondition when a random table is asked for more
//     distinct entries than it holds; this is a data mismatch, not a
//     runtime condition
//   - Log and skip configuration errors found while resolving equipment
//
// Command layer:
//   - Map codes to process exit status with Code.ExitCode
package errors
