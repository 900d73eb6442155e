package models

import (
  "strconv"

  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
)

const KindPartialCommunity = "community.partial"

// PartialCommunity is the lightweight community reference embedded in
// post-like payloads. Community IDs are numeric on the wire, the
// identity holds the decimal form.
type PartialCommunity struct {
  common.Identity
  Name         string
  LogoImageURL *string
}

// NewPartialCommunity builds a PartialCommunity from the community
// sub-mapping of a post-like payload.
func NewPartialCommunity(data gjson.Result) (*PartialCommunity, error) {
  if err := common.EnsureObject(data, KindPartialCommunity); err != nil {
    return nil, err
  }
  id, err := common.GetInt64(data, KindPartialCommunity, "communityId")
  if err != nil {
    return nil, err
  }
  name, err := common.GetString(data, KindPartialCommunity, "communityName")
  if err != nil {
    return nil, err
  }
  logoImageURL, err := common.OptionalString(data, KindPartialCommunity, "logoImage")
  if err != nil {
    return nil, err
  }
  return &PartialCommunity{
    Identity:     common.Identity{ID: strconv.FormatInt(id, 10), Kind: KindPartialCommunity},
    Name:         name,
    LogoImageURL: logoImageURL,
  }, nil
}

func (c *PartialCommunity) String() string {
  return c.Name
}
