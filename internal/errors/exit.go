package errors

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error, including stub failures.
	ExitGeneralError = 1

	// ExitValidationError indicates input or configuration failed validation.
	ExitValidationError = 2

	// ExitNotFound indicates a file or directory was not found.
	ExitNotFound = 5

	// ExitCollision indicates generation was blocked by existing files.
	ExitCollision = 7
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitCollision:
		return "Collision"
	default:
		return "Unknown"
	}
}
