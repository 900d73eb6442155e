package common

import (
  "github.com/tidwall/gjson"
)

// Field extraction over a decoded payload. Every constructor funnels its
// key lookups through these helpers so the presence and shape branching
// lives in one place. Values are taken as-is from the payload, never
// coerced between JSON types.

// EnsureObject rejects payloads that are not JSON objects.
func EnsureObject(data gjson.Result, kind string) error {
  if !data.Exists() {
    return &MissingFieldError{Kind: kind, Field: "payload"}
  }
  if !data.IsObject() {
    return &MalformedFieldError{Kind: kind, Field: "payload", Want: "object"}
  }
  return nil
}

// GetString extracts a required string field.
func GetString(data gjson.Result, kind string, key string) (string, error) {
  v := data.Get(key)
  if !v.Exists() {
    return "", &MissingFieldError{Kind: kind, Field: key}
  }
  if v.Type != gjson.String {
    return "", &MalformedFieldError{Kind: kind, Field: key, Want: "string"}
  }
  return v.Str, nil
}

// GetInt extracts a required numeric field as an int.
func GetInt(data gjson.Result, kind string, key string) (int, error) {
  v := data.Get(key)
  if !v.Exists() {
    return 0, &MissingFieldError{Kind: kind, Field: key}
  }
  if v.Type != gjson.Number {
    return 0, &MalformedFieldError{Kind: kind, Field: key, Want: "number"}
  }
  return int(v.Int()), nil
}

// GetInt64 extracts a required numeric field as an int64. Used for epoch
// timestamps, which overflow int on 32-bit builds.
func GetInt64(data gjson.Result, kind string, key string) (int64, error) {
  v := data.Get(key)
  if !v.Exists() {
    return 0, &MissingFieldError{Kind: kind, Field: key}
  }
  if v.Type != gjson.Number {
    return 0, &MalformedFieldError{Kind: kind, Field: key, Want: "number"}
  }
  return v.Int(), nil
}

// GetBool extracts a required boolean field. The wire value must already
// be a JSON boolean, string representations are not coerced.
func GetBool(data gjson.Result, kind string, key string) (bool, error) {
  v := data.Get(key)
  if !v.Exists() {
    return false, &MissingFieldError{Kind: kind, Field: key}
  }
  if v.Type != gjson.True && v.Type != gjson.False {
    return false, &MalformedFieldError{Kind: kind, Field: key, Want: "boolean"}
  }
  return v.Bool(), nil
}

// GetObject extracts a required sub-mapping.
func GetObject(data gjson.Result, kind string, key string) (gjson.Result, error) {
  v := data.Get(key)
  if !v.Exists() {
    return gjson.Result{}, &MissingFieldError{Kind: kind, Field: key}
  }
  if !v.IsObject() {
    return gjson.Result{}, &MalformedFieldError{Kind: kind, Field: key, Want: "object"}
  }
  return v, nil
}

// GetStrings extracts a required array of strings, preserving order.
func GetStrings(data gjson.Result, kind string, key string) ([]string, error) {
  v := data.Get(key)
  if !v.Exists() {
    return nil, &MissingFieldError{Kind: kind, Field: key}
  }
  if !v.IsArray() {
    return nil, &MalformedFieldError{Kind: kind, Field: key, Want: "array"}
  }
  var out []string
  for _, item := range v.Array() {
    if item.Type != gjson.String {
      return nil, &MalformedFieldError{Kind: kind, Field: key, Want: "array of strings"}
    }
    out = append(out, item.Str)
  }
  return out, nil
}

// OptionalString extracts an optional string field. An absent or null
// key yields nil, a present key of the wrong type is still malformed.
func OptionalString(data gjson.Result, kind string, key string) (*string, error) {
  v := data.Get(key)
  if !v.Exists() || v.Type == gjson.Null {
    return nil, nil
  }
  if v.Type != gjson.String {
    return nil, &MalformedFieldError{Kind: kind, Field: key, Want: "string"}
  }
  return &v.Str, nil
}

// OptionalObject extracts an optional sub-mapping. The boolean reports
// presence, absent and null both count as not present.
func OptionalObject(data gjson.Result, kind string, key string) (gjson.Result, bool, error) {
  v := data.Get(key)
  if !v.Exists() || v.Type == gjson.Null {
    return gjson.Result{}, false, nil
  }
  if !v.IsObject() {
    return gjson.Result{}, false, &MalformedFieldError{Kind: kind, Field: key, Want: "object"}
  }
  return v, true, nil
}
