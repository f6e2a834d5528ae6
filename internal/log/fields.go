package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldMonth      = "month"
	FieldMonths     = "months"
	FieldCategoryID = "category_id"
	FieldNetWorth   = "net_worth"
	FieldSnapshots  = "snapshots"
	FieldBackend    = "backend"
	FieldSheetsRef  = "sheets_ref"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentAnalytics = "analytics"
	ComponentHistory   = "history"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentSheets    = "sheets"
	ComponentCache     = "cache"
)

// Operations defines standard operation names
const (
	OpClassify = "classify"
	OpTrends   = "trends"
	OpCapture  = "capture"
	OpRead     = "read"
	OpWrite    = "write"
	OpWindow   = "window"
	OpClear    = "clear"
	OpExport   = "export"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
