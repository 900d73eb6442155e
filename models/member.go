package models

import (
  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
)

const (
  KindPartialMember = "member.partial"
  KindMember        = "member"
)

// PartialMember is the minimal member shape guaranteed wherever a user
// is referenced. Richer variants embed it and add the fields their
// fetch context populates.
type PartialMember struct {
  common.Identity
  Name        string
  ImageURL    *string
  ProfileType string
}

// NewPartialMember builds a PartialMember from a decoded payload.
func NewPartialMember(data gjson.Result) (*PartialMember, error) {
  return newPartialMember(data, KindPartialMember)
}

// newPartialMember extracts the base member fields under the concrete
// kind of the variant being built, so errors name that kind.
func newPartialMember(data gjson.Result, kind string) (*PartialMember, error) {
  if err := common.EnsureObject(data, kind); err != nil {
    return nil, err
  }
  id, err := common.GetString(data, kind, "memberId")
  if err != nil {
    return nil, err
  }
  name, err := common.GetString(data, kind, "profileName")
  if err != nil {
    return nil, err
  }
  imageURL, err := common.OptionalString(data, kind, "profileImageUrl")
  if err != nil {
    return nil, err
  }
  profileType, err := common.GetString(data, kind, "profileType")
  if err != nil {
    return nil, err
  }
  return &PartialMember{
    Identity:    common.Identity{ID: id, Kind: kind},
    Name:        name,
    ImageURL:    imageURL,
    ProfileType: profileType,
  }, nil
}

func (m *PartialMember) String() string {
  return m.Name
}

// Member is the richest member shape, returned when a single member is
// fetched directly.
type Member struct {
  PartialMember
  CommunityID    int64
  CoverImageURL  *string
  ProfileComment *string
  HasJoined      bool
  HasMembership  bool
  IsOfficial     bool
  IsHidden       bool
  IsBlinded      bool
  IsFollowed     bool
  IsMyProfile    bool
  FirstJoinedAt  int64
  FollowCount    *int
  Profile        *ArtistProfile
}

// NewMember builds a Member from a decoded payload. The follower count
// is only populated when the payload carries a followCount sub-mapping,
// some fetch contexts never compute it.
func NewMember(data gjson.Result) (*Member, error) {
  base, err := newPartialMember(data, KindMember)
  if err != nil {
    return nil, err
  }
  communityID, err := common.GetInt64(data, KindMember, "communityId")
  if err != nil {
    return nil, err
  }
  coverImageURL, err := common.OptionalString(data, KindMember, "profileCoverImageUrl")
  if err != nil {
    return nil, err
  }
  comment, err := common.OptionalString(data, KindMember, "profileComment")
  if err != nil {
    return nil, err
  }
  hasJoined, err := common.GetBool(data, KindMember, "joined")
  if err != nil {
    return nil, err
  }
  hasMembership, err := common.GetBool(data, KindMember, "hasMembership")
  if err != nil {
    return nil, err
  }
  isOfficial, err := common.GetBool(data, KindMember, "hasOfficialMark")
  if err != nil {
    return nil, err
  }
  isHidden, err := common.GetBool(data, KindMember, "hidden")
  if err != nil {
    return nil, err
  }
  isBlinded, err := common.GetBool(data, KindMember, "blinded")
  if err != nil {
    return nil, err
  }
  isFollowed, err := common.GetBool(data, KindMember, "followed")
  if err != nil {
    return nil, err
  }
  isMyProfile, err := common.GetBool(data, KindMember, "myProfile")
  if err != nil {
    return nil, err
  }
  firstJoinedAt, err := common.GetInt64(data, KindMember, "firstJoinAt")
  if err != nil {
    return nil, err
  }
  var followCount *int
  follow, hasFollow, err := common.OptionalObject(data, KindMember, "followCount")
  if err != nil {
    return nil, err
  }
  if hasFollow {
    count, err := common.GetInt(follow, KindMember, "followerCount")
    if err != nil {
      return nil, err
    }
    followCount = &count
  }
  profile, err := optionalArtistProfile(data, KindMember)
  if err != nil {
    return nil, err
  }
  return &Member{
    PartialMember:  *base,
    CommunityID:    communityID,
    CoverImageURL:  coverImageURL,
    ProfileComment: comment,
    HasJoined:      hasJoined,
    HasMembership:  hasMembership,
    IsOfficial:     isOfficial,
    IsHidden:       isHidden,
    IsBlinded:      isBlinded,
    IsFollowed:     isFollowed,
    IsMyProfile:    isMyProfile,
    FirstJoinedAt:  firstJoinedAt,
    FollowCount:    followCount,
    Profile:        profile,
  }, nil
}
