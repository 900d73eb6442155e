package attachments

import (
  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
)

const KindVideo = "video"

// Video is a video embedded in a post-like object. The playable video
// URL is not part of the payload, resolving it takes a separate API
// call by the owning client.
type Video struct {
  common.Identity
  Duration     int
  Height       int
  Width        int
  ThumbnailURL string
}

// NewVideo builds a Video from a decoded payload. Duration, dimensions
// and the thumbnail live under the uploadInfo sub-mapping on the wire.
func NewVideo(data gjson.Result) (*Video, error) {
  if err := common.EnsureObject(data, KindVideo); err != nil {
    return nil, err
  }
  id, err := common.GetString(data, KindVideo, "videoId")
  if err != nil {
    return nil, err
  }
  upload, err := common.GetObject(data, KindVideo, "uploadInfo")
  if err != nil {
    return nil, err
  }
  duration, err := common.GetInt(upload, KindVideo, "playTime")
  if err != nil {
    return nil, err
  }
  height, err := common.GetInt(upload, KindVideo, "height")
  if err != nil {
    return nil, err
  }
  width, err := common.GetInt(upload, KindVideo, "width")
  if err != nil {
    return nil, err
  }
  thumbnail, err := common.GetString(upload, KindVideo, "imageUrl")
  if err != nil {
    return nil, err
  }
  return &Video{
    Identity:     common.Identity{ID: id, Kind: KindVideo},
    Duration:     duration,
    Height:       height,
    Width:        width,
    ThumbnailURL: thumbnail,
  }, nil
}
