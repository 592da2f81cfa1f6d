package diagnostic

// Diagnostic codes.
const (
	CodeConfigInvalid       = "config_invalid"
	CodeLoadFailed          = "load_failed"
	CodeUnknownRecord       = "unknown_record"
	CodeNotAStruct          = "not_a_struct"
	CodeEmptyStruct         = "empty_struct"
	CodeUnexportedField     = "unexported_field"
	CodeEmbeddedField       = "embedded_field"
	CodeUnsupportedName     = "unsupported_name"
	CodeDuplicateRecord     = "duplicate_record"
	CodeDuplicateConversion = "duplicate_conversion"
	CodeMissingField        = "missing_field"
	CodeUnusedField         = "unused_field"
	CodeDroppedField        = "dropped_field"
	CodeTypeMismatch        = "type_mismatch"
	CodeShapeMismatch       = "shape_mismatch"
	CodeAmbiguousPosition   = "ambiguous_position"
	CodeUnsupportedDeepType = "unsupported_deep_type"
	CodeDeepCycle           = "deep_cycle"
	CodeNameCollision       = "name_collision"
)
