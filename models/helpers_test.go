package models

import (
  "github.com/tidwall/gjson"
  "github.com/tidwall/sjson"
)

// deleteKey returns the fixture without the given top-level key.
func deleteKey(payload string, key string) (gjson.Result, error) {
  out, err := sjson.Delete(payload, key)
  if err != nil {
    return gjson.Result{}, err
  }
  return gjson.Parse(out), nil
}

// setKey returns the fixture with the given key replaced by raw JSON.
func setKey(payload string, key string, raw string) (gjson.Result, error) {
  out, err := sjson.SetRaw(payload, key, raw)
  if err != nil {
    return gjson.Result{}, err
  }
  return gjson.Parse(out), nil
}
