package models

import (
  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
  "weverse.local/weverse-client/models/attachments"
)

const KindPost = "post"

// PostLike is the content-item shape shared by posts, media, live
// streams and moments. It retains the raw payload so concrete kinds can
// derive views from it after construction.
type PostLike struct {
  common.Identity
  Data               gjson.Result
  Body               string
  PlainBody          string
  ShareURL           string
  LikeCount          int
  CommentCount       int
  PublishedAt        int64
  IsBookmarked       bool
  IsLocked           bool
  IsHiddenFromArtist bool
  IsMembershipOnly   bool
  HasProduct         bool
  Hashtags           []string
  PostType           string
  SectionType        string
  Author             *PostAuthor
  Community          *PartialCommunity
  LikeID             *string
}

// newPostLike extracts the shared content-item fields under the concrete
// kind being built. The author and community sub-mappings are required,
// the like ID is only present when the caller has liked the item.
func newPostLike(data gjson.Result, kind string) (*PostLike, error) {
  if err := common.EnsureObject(data, kind); err != nil {
    return nil, err
  }
  id, err := common.GetString(data, kind, "postId")
  if err != nil {
    return nil, err
  }
  body, err := common.GetString(data, kind, "body")
  if err != nil {
    return nil, err
  }
  plainBody, err := common.GetString(data, kind, "plainBody")
  if err != nil {
    return nil, err
  }
  shareURL, err := common.GetString(data, kind, "shareUrl")
  if err != nil {
    return nil, err
  }
  likeCount, err := common.GetInt(data, kind, "emotionCount")
  if err != nil {
    return nil, err
  }
  commentCount, err := common.GetInt(data, kind, "commentCount")
  if err != nil {
    return nil, err
  }
  publishedAt, err := common.GetInt64(data, kind, "publishedAt")
  if err != nil {
    return nil, err
  }
  isBookmarked, err := common.GetBool(data, kind, "bookmarked")
  if err != nil {
    return nil, err
  }
  isLocked, err := common.GetBool(data, kind, "locked")
  if err != nil {
    return nil, err
  }
  isHiddenFromArtist, err := common.GetBool(data, kind, "hideFromArtist")
  if err != nil {
    return nil, err
  }
  isMembershipOnly, err := common.GetBool(data, kind, "membershipOnly")
  if err != nil {
    return nil, err
  }
  hasProduct, err := common.GetBool(data, kind, "hasProduct")
  if err != nil {
    return nil, err
  }
  hashtags, err := common.GetStrings(data, kind, "tags")
  if err != nil {
    return nil, err
  }
  postType, err := common.GetString(data, kind, "postType")
  if err != nil {
    return nil, err
  }
  sectionType, err := common.GetString(data, kind, "sectionType")
  if err != nil {
    return nil, err
  }
  authorData, err := common.GetObject(data, kind, "author")
  if err != nil {
    return nil, err
  }
  author, err := NewPostAuthor(authorData)
  if err != nil {
    return nil, err
  }
  communityData, err := common.GetObject(data, kind, "community")
  if err != nil {
    return nil, err
  }
  community, err := NewPartialCommunity(communityData)
  if err != nil {
    return nil, err
  }
  likeID, err := common.OptionalString(data, kind, "viewerEmotionId")
  if err != nil {
    return nil, err
  }
  return &PostLike{
    Identity:           common.Identity{ID: id, Kind: kind},
    Data:               data,
    Body:               body,
    PlainBody:          plainBody,
    ShareURL:           shareURL,
    LikeCount:          likeCount,
    CommentCount:       commentCount,
    PublishedAt:        publishedAt,
    IsBookmarked:       isBookmarked,
    IsLocked:           isLocked,
    IsHiddenFromArtist: isHiddenFromArtist,
    IsMembershipOnly:   isMembershipOnly,
    HasProduct:         hasProduct,
    Hashtags:           hashtags,
    PostType:           postType,
    SectionType:        sectionType,
    Author:             author,
    Community:          community,
    LikeID:             likeID,
  }, nil
}

// Post is a community post. On top of the shared content-item fields it
// derives its attachment lists from the retained payload on demand, so
// they always reflect the raw data instead of a snapshot taken at
// construction time.
type Post struct {
  PostLike
}

// NewPost builds a Post from a decoded payload.
func NewPost(data gjson.Result) (*Post, error) {
  base, err := newPostLike(data, KindPost)
  if err != nil {
    return nil, err
  }
  return &Post{PostLike: *base}, nil
}

func (p *Post) String() string {
  return p.PlainBody
}

// Photos walks the photo bucket of the attachment section. Buckets are
// keyed by attachment ID, entries come back in payload order. An absent
// or empty bucket yields an empty list.
func (p *Post) Photos() ([]*attachments.Photo, error) {
  var photos []*attachments.Photo
  var walkErr error
  p.Data.Get("attachment.photo").ForEach(func(_, entry gjson.Result) bool {
    photo, err := attachments.NewPhoto(entry)
    if err != nil {
      walkErr = err
      return false
    }
    photos = append(photos, photo)
    return true
  })
  if walkErr != nil {
    return nil, walkErr
  }
  return photos, nil
}

// Videos walks the video bucket of the attachment section.
func (p *Post) Videos() ([]*attachments.Video, error) {
  var videos []*attachments.Video
  var walkErr error
  p.Data.Get("attachment.video").ForEach(func(_, entry gjson.Result) bool {
    video, err := attachments.NewVideo(entry)
    if err != nil {
      walkErr = err
      return false
    }
    videos = append(videos, video)
    return true
  })
  if walkErr != nil {
    return nil, walkErr
  }
  return videos, nil
}

// Snippets walks the snippet bucket of the attachment section.
func (p *Post) Snippets() ([]*attachments.Snippet, error) {
  var snippets []*attachments.Snippet
  var walkErr error
  p.Data.Get("attachment.snippet").ForEach(func(_, entry gjson.Result) bool {
    snippet, err := attachments.NewSnippet(entry)
    if err != nil {
      walkErr = err
      return false
    }
    snippets = append(snippets, snippet)
    return true
  })
  if walkErr != nil {
    return nil, walkErr
  }
  return snippets, nil
}
