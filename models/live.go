package models

import (
  "github.com/tidwall/gjson"
)

const KindLive = "live"

// Live is a live broadcast content item. It shares the post-like base
// shape.
type Live struct {
  PostLike
}

// NewLive builds a Live from a decoded payload.
func NewLive(data gjson.Result) (*Live, error) {
  base, err := newPostLike(data, KindLive)
  if err != nil {
    return nil, err
  }
  return &Live{PostLike: *base}, nil
}
