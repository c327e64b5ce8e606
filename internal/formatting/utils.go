package formatting

import (
	"encoding/json"
	"fmt"
)

// PrettyJSON renders v as two-space indented JSON, or with %v when v
// cannot be marshaled.
func PrettyJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// DecodeText parses JSON text from a tool result. Text that is not JSON is
// returned unchanged as a string.
func DecodeText(text string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	return v
}
