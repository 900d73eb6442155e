package models

import (
  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
)

const KindPostAuthor = "post.author"

// profileSpaceStatus value marking an accessible author profile.
const profileStatusAccessible = "ACCESSIBLE"

// PostAuthor is the author sub-object embedded in a post-like payload.
type PostAuthor struct {
  PartialMember
  CommunityID  int64
  HasJoined    bool
  IsOfficial   bool
  IsAccessible bool
  IsMyProfile  bool
  Profile      *ArtistProfile
}

// NewPostAuthor builds a PostAuthor from the author sub-mapping of a
// post-like payload. The official profile is only present when the
// author is an artist.
func NewPostAuthor(data gjson.Result) (*PostAuthor, error) {
  base, err := newPartialMember(data, KindPostAuthor)
  if err != nil {
    return nil, err
  }
  communityID, err := common.GetInt64(data, KindPostAuthor, "communityId")
  if err != nil {
    return nil, err
  }
  hasJoined, err := common.GetBool(data, KindPostAuthor, "joined")
  if err != nil {
    return nil, err
  }
  isOfficial, err := common.GetBool(data, KindPostAuthor, "hasOfficialMark")
  if err != nil {
    return nil, err
  }
  status, err := common.GetString(data, KindPostAuthor, "profileSpaceStatus")
  if err != nil {
    return nil, err
  }
  isMyProfile, err := common.GetBool(data, KindPostAuthor, "myProfile")
  if err != nil {
    return nil, err
  }
  profile, err := optionalArtistProfile(data, KindPostAuthor)
  if err != nil {
    return nil, err
  }
  return &PostAuthor{
    PartialMember: *base,
    CommunityID:   communityID,
    HasJoined:     hasJoined,
    IsOfficial:    isOfficial,
    IsAccessible:  status == profileStatusAccessible,
    IsMyProfile:   isMyProfile,
    Profile:       profile,
  }, nil
}
