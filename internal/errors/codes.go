package errors

// ErrorCode represents a standardized error code used throughout the core
type ErrorCode string

// Kind classifies an error code into one of the failure families callers
// branch on.
type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindInvalidData        Kind = "INVALID_DATA"
	KindConflict           Kind = "CONFLICT"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindServiceIntegration Kind = "SERVICE_INTEGRATION"
	KindInternal           Kind = "INTERNAL"
)

// Authorization error codes (AUTH_*)
const (
	AuthNotAuthenticated       ErrorCode = "AUTH_001"
	AuthInsufficientPermission ErrorCode = "AUTH_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound ErrorCode = "CUSTOMER_001"
	CustomerInactive ErrorCode = "CUSTOMER_002"
)

// Product error codes (PRODUCT_*)
const (
	ProductNotFound ErrorCode = "PRODUCT_001"
	ProductInactive ErrorCode = "PRODUCT_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountInvalidData         ErrorCode = "ACCOUNT_002"
	AccountAlreadyClosed       ErrorCode = "ACCOUNT_003"
	AccountInvalidStatusChange ErrorCode = "ACCOUNT_004"
	AccountNumberExhausted     ErrorCode = "ACCOUNT_005"
)

// Calculation error codes (CALCULATION_*)
const (
	CalculationNotFound    ErrorCode = "CALCULATION_001"
	CalculationInvalidData ErrorCode = "CALCULATION_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount ErrorCode = "TRANSACTION_001"
	TransactionInvalidType   ErrorCode = "TRANSACTION_002"
	TransactionConflict      ErrorCode = "TRANSACTION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceIntegration ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthNotAuthenticated:       "User not authenticated",
	AuthInsufficientPermission: "User does not have required role (BANK_OFFICER or ADMIN)",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	CustomerNotFound: "Customer not found",
	CustomerInactive: "Customer account is not active",

	ProductNotFound: "Product not found",
	ProductInactive: "Product is not active",

	AccountNotFound:            "Account not found",
	AccountInvalidData:         "Invalid account data",
	AccountAlreadyClosed:       "Account is already closed",
	AccountInvalidStatusChange: "Account status change not permitted",
	AccountNumberExhausted:     "Unable to allocate a unique account number",

	CalculationNotFound:    "Calculation not found",
	CalculationInvalidData: "Invalid calculation data",

	TransactionInvalidAmount: "Transaction amount must be positive",
	TransactionInvalidType:   "Invalid transaction type",
	TransactionConflict:      "Concurrent update on account ledger, please retry",

	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database error",
	SystemServiceIntegration: "External service unavailable",
	SystemConfigurationError: "System configuration error",
}

var errorKinds = map[ErrorCode]Kind{
	AuthNotAuthenticated:       KindUnauthorized,
	AuthInsufficientPermission: KindUnauthorized,

	ValidationGeneral:       KindInvalidData,
	ValidationRequiredField: KindInvalidData,
	ValidationInvalidFormat: KindInvalidData,
	ValidationOutOfRange:    KindInvalidData,
	ValidationInvalidDate:   KindInvalidData,

	CustomerNotFound: KindNotFound,
	CustomerInactive: KindInvalidData,

	ProductNotFound: KindNotFound,
	ProductInactive: KindInvalidData,

	AccountNotFound:            KindNotFound,
	AccountInvalidData:         KindInvalidData,
	AccountAlreadyClosed:       KindConflict,
	AccountInvalidStatusChange: KindConflict,
	AccountNumberExhausted:     KindInternal,

	CalculationNotFound:    KindNotFound,
	CalculationInvalidData: KindInvalidData,

	TransactionInvalidAmount: KindInvalidData,
	TransactionInvalidType:   KindInvalidData,
	TransactionConflict:      KindInternal,

	SystemInternalError:      KindInternal,
	SystemDatabaseError:      KindInternal,
	SystemServiceIntegration: KindServiceIntegration,
	SystemConfigurationError: KindInternal,
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// GetKind returns the failure family of a code. Unknown codes are internal.
func GetKind(code ErrorCode) Kind {
	if kind, ok := errorKinds[code]; ok {
		return kind
	}
	return KindInternal
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
