package errors

// ErrorCode identifies an application error class
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_INVALID_METHOD    ErrorCode = 1004
	ErrorCode_PAYLOAD_TOO_LARGE ErrorCode = 1005

	// Analysis
	ErrorCode_ANALYSIS_FAILED      ErrorCode = 2000
	ErrorCode_ANALYZER_UNAVAILABLE ErrorCode = 2001

	// Integration
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 3000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 3001

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 4000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_INVALID_METHOD:             "INVALID_METHOD",
	ErrorCode_PAYLOAD_TOO_LARGE:          "PAYLOAD_TOO_LARGE",
	ErrorCode_ANALYSIS_FAILED:            "ANALYSIS_FAILED",
	ErrorCode_ANALYZER_UNAVAILABLE:       "ANALYZER_UNAVAILABLE",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:       "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNSPECIFIED"
}

// MarshalText renders the code by name in JSON bodies and log fields
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
