package models

import (
  "github.com/tidwall/gjson"
)

const KindMedia = "media"

// Media is a content item from the community media tab. It shares the
// post-like base shape.
type Media struct {
  PostLike
}

// NewMedia builds a Media from a decoded payload.
func NewMedia(data gjson.Result) (*Media, error) {
  base, err := newPostLike(data, KindMedia)
  if err != nil {
    return nil, err
  }
  return &Media{PostLike: *base}, nil
}
