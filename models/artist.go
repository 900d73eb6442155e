package models

import (
  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
)

const KindArtist = "artist"

// ArtistProfile is the official profile attached to artist accounts. It
// is a composed value inside a member payload, not an entity of its own,
// so it carries no identity.
type ArtistProfile struct {
  OfficialName     string
  OfficialImageURL string
  Birthday         int64
}

// NewArtistProfile builds an ArtistProfile from the artistOfficialProfile
// sub-mapping of a member payload.
func NewArtistProfile(data gjson.Result) (*ArtistProfile, error) {
  const kind = "artist.profile"
  if err := common.EnsureObject(data, kind); err != nil {
    return nil, err
  }
  officialName, err := common.GetString(data, kind, "officialName")
  if err != nil {
    return nil, err
  }
  officialImageURL, err := common.GetString(data, kind, "officialImageUrl")
  if err != nil {
    return nil, err
  }
  birthday, err := common.GetObject(data, kind, "birthday")
  if err != nil {
    return nil, err
  }
  date, err := common.GetInt64(birthday, kind, "date")
  if err != nil {
    return nil, err
  }
  return &ArtistProfile{
    OfficialName:     officialName,
    OfficialImageURL: officialImageURL,
    Birthday:         date,
  }, nil
}

func (p *ArtistProfile) String() string {
  return p.OfficialName
}

// optionalArtistProfile reads the artistOfficialProfile sub-mapping when
// present, for the member variants where the platform only includes it
// on artist accounts.
func optionalArtistProfile(data gjson.Result, kind string) (*ArtistProfile, error) {
  sub, ok, err := common.OptionalObject(data, kind, "artistOfficialProfile")
  if err != nil {
    return nil, err
  }
  if !ok {
    return nil, nil
  }
  return NewArtistProfile(sub)
}

// Artist is a member returned by the community artist listing. The
// official profile is always present for this kind.
type Artist struct {
  PartialMember
  CommunityID int64
  Profile     ArtistProfile
  JoinedAt    int64
}

// NewArtist builds an Artist from a decoded payload.
func NewArtist(data gjson.Result) (*Artist, error) {
  base, err := newPartialMember(data, KindArtist)
  if err != nil {
    return nil, err
  }
  communityID, err := common.GetInt64(data, KindArtist, "communityId")
  if err != nil {
    return nil, err
  }
  sub, err := common.GetObject(data, KindArtist, "artistOfficialProfile")
  if err != nil {
    return nil, err
  }
  profile, err := NewArtistProfile(sub)
  if err != nil {
    return nil, err
  }
  joinedAt, err := common.GetInt64(data, KindArtist, "joinedDate")
  if err != nil {
    return nil, err
  }
  return &Artist{
    PartialMember: *base,
    CommunityID:   communityID,
    Profile:       *profile,
    JoinedAt:      joinedAt,
  }, nil
}
