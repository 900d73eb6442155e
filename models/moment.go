package models

import (
  "github.com/tidwall/gjson"
)

const KindMoment = "moment"

// Moment is a short-lived artist content item. It shares the post-like
// base shape.
type Moment struct {
  PostLike
}

// NewMoment builds a Moment from a decoded payload.
func NewMoment(data gjson.Result) (*Moment, error) {
  base, err := newPostLike(data, KindMoment)
  if err != nil {
    return nil, err
  }
  return &Moment{PostLike: *base}, nil
}
