package max

import (
	"strconv"

	"github.com/buger/jsonparser"
)

// Bundle is a JSON object of loosely typed key/value pairs delivered by the mediation server.
// Numbers and booleans may arrive either as JSON scalars or as strings.
type Bundle []byte

// String returns the value at key, or fallback when the key is absent or not a scalar.
func (b Bundle) String(key string, fallback string) string {
	value, dataType, _, err := jsonparser.Get(b, key)
	if err != nil {
		return fallback
	}
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return fallback
		}
		return s
	case jsonparser.Number, jsonparser.Boolean:
		return string(value)
	}
	return fallback
}

// Int returns the value at key as an int, or fallback when absent or not numeric.
func (b Bundle) Int(key string, fallback int) int {
	if v, err := jsonparser.GetInt(b, key); err == nil {
		return int(v)
	}
	if s, err := jsonparser.GetString(b, key); err == nil {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}

// Bool returns the value at key as a bool, or fallback when absent or not boolean.
func (b Bundle) Bool(key string, fallback bool) bool {
	if v, err := jsonparser.GetBoolean(b, key); err == nil {
		return v
	}
	if s, err := jsonparser.GetString(b, key); err == nil {
		if v, err := strconv.ParseBool(s); err == nil {
			return v
		}
	}
	return fallback
}

// Has reports whether key is present.
func (b Bundle) Has(key string) bool {
	_, _, _, err := jsonparser.Get(b, key)
	return err == nil
}
