package attachments

import (
  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
)

const KindPhoto = "photo"

// Photo is a photo embedded in a post-like object.
type Photo struct {
  common.Identity
  URL    string
  Height int
  Width  int
}

// NewPhoto builds a Photo from a decoded payload.
func NewPhoto(data gjson.Result) (*Photo, error) {
  if err := common.EnsureObject(data, KindPhoto); err != nil {
    return nil, err
  }
  id, err := common.GetString(data, KindPhoto, "photoId")
  if err != nil {
    return nil, err
  }
  url, err := common.GetString(data, KindPhoto, "url")
  if err != nil {
    return nil, err
  }
  height, err := common.GetInt(data, KindPhoto, "height")
  if err != nil {
    return nil, err
  }
  width, err := common.GetInt(data, KindPhoto, "width")
  if err != nil {
    return nil, err
  }
  return &Photo{
    Identity: common.Identity{ID: id, Kind: KindPhoto},
    URL:      url,
    Height:   height,
    Width:    width,
  }, nil
}

func (p *Photo) String() string {
  return p.URL
}
