package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldCount     = "count"
	FieldName      = "name"
	FieldKind      = "kind"
	FieldFrequency = "frequency"
	FieldAmount    = "amount"
	FieldSnapshot  = "snapshot"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentCLI      = "cli"
	ComponentLedger   = "ledger"
	ComponentReport   = "report"
	ComponentSnapshot = "snapshot"
	ComponentStorage  = "storage"
	ComponentBackend  = "backend"
)

// Operations defines standard operation names
const (
	OpInit    = "init"
	OpAdd     = "add"
	OpList    = "list"
	OpReport  = "report"
	OpSave    = "save"
	OpLoad    = "load"
	OpBackup  = "backup"
	OpRestore = "restore"
)
