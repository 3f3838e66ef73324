package logger

// Standard field keys.
const (
	FieldComponent = "component"
	FieldContract  = "contract"
	FieldPart      = "part"
	FieldHandle    = "handle"
	FieldPolicy    = "policy"
	FieldError     = "error"
)

// Fields builds a map from alternating key-value pairs.
//
//	logger.Debug("exported", logger.Fields("part", "CarBMW"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	m := map[string]interface{}{"operation": op}
	if err != nil {
		m[FieldError] = err.Error()
	}
	return m
}
