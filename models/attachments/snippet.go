package attachments

import (
  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
)

const KindSnippet = "snippet"

// Snippet is a link preview embedded in a post-like object.
type Snippet struct {
  common.Identity
  URL          string
  Title        string
  Description  string
  Type         *string
  Site         *string
  Domain       string
  ThumbnailURL *string
}

// NewSnippet builds a Snippet from a decoded payload. The thumbnail URL
// is only read when the image sub-mapping is present.
func NewSnippet(data gjson.Result) (*Snippet, error) {
  if err := common.EnsureObject(data, KindSnippet); err != nil {
    return nil, err
  }
  id, err := common.GetString(data, KindSnippet, "snippetId")
  if err != nil {
    return nil, err
  }
  url, err := common.GetString(data, KindSnippet, "url")
  if err != nil {
    return nil, err
  }
  title, err := common.GetString(data, KindSnippet, "title")
  if err != nil {
    return nil, err
  }
  description, err := common.GetString(data, KindSnippet, "description")
  if err != nil {
    return nil, err
  }
  snippetType, err := common.OptionalString(data, KindSnippet, "type")
  if err != nil {
    return nil, err
  }
  site, err := common.OptionalString(data, KindSnippet, "site")
  if err != nil {
    return nil, err
  }
  domain, err := common.GetString(data, KindSnippet, "domain")
  if err != nil {
    return nil, err
  }
  image, hasImage, err := common.OptionalObject(data, KindSnippet, "image")
  if err != nil {
    return nil, err
  }
  var thumbnail *string
  if hasImage {
    imageURL, err := common.GetString(image, KindSnippet, "url")
    if err != nil {
      return nil, err
    }
    thumbnail = &imageURL
  }
  return &Snippet{
    Identity:     common.Identity{ID: id, Kind: KindSnippet},
    URL:          url,
    Title:        title,
    Description:  description,
    Type:         snippetType,
    Site:         site,
    Domain:       domain,
    ThumbnailURL: thumbnail,
  }, nil
}

func (s *Snippet) String() string {
  return s.Title
}
