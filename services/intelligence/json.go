package ai

import (
	"encoding/json"
	"strings"
)

// decodeArray unmarshals the first JSON array found in text into v.
// Model output may wrap the array in prose or code fences; anything that
// does not contain a parseable array leaves v untouched and returns false.
func decodeArray(text string, v interface{}) bool {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return false
	}
	return json.Unmarshal([]byte(text[start:end+1]), v) == nil
}

// decodeObject unmarshals the first JSON object found in text into v.
func decodeObject(text string, v interface{}) bool {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return false
	}
	return json.Unmarshal([]byte(text[start:end+1]), v) == nil
}
