package models

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "github.com/tidwall/gjson"

  "weverse.local/weverse-client/common"
)

const postFixture = `{
  "postId": "0-123",
  "body": "<w:attachment id=\"p1\"/> hello #carat",
  "plainBody": "hello #carat",
  "shareUrl": "https://weverse.io/seventeen/artist/0-123",
  "emotionCount": 120000,
  "commentCount": 4321,
  "publishedAt": 1675239000000,
  "bookmarked": false,
  "locked": false,
  "hideFromArtist": false,
  "membershipOnly": false,
  "hasProduct": false,
  "tags": ["carat", "seventeen"],
  "postType": "NORMAL",
  "sectionType": "ARTIST",
  "author": {
    "memberId": "m2",
    "profileName": "hoshi",
    "profileType": "ARTIST",
    "communityId": 14,
    "joined": true,
    "hasOfficialMark": true,
    "profileSpaceStatus": "ACCESSIBLE",
    "myProfile": false
  },
  "community": {"communityId": 14, "communityName": "SEVENTEEN"},
  "viewerEmotionId": "like-9",
  "attachment": {
    "photo": {
      "p1": {"photoId": "p1", "url": "http://x/1.jpg", "height": 100, "width": 200},
      "p2": {"photoId": "p2", "url": "http://x/2.jpg", "height": 300, "width": 400},
      "p3": {"photoId": "p3", "url": "http://x/3.jpg", "height": 500, "width": 600}
    },
    "video": {
      "v1": {"videoId": "v1", "uploadInfo": {"playTime": 60, "height": 720, "width": 1280, "imageUrl": "http://x/v1.jpg"}}
    },
    "snippet": {
      "s1": {"snippetId": "s1", "url": "http://e.com", "title": "t", "description": "d", "domain": "e.com"}
    }
  }
}`

func TestNewPost(t *testing.T) {
  t.Run("all fields", func(t *testing.T) {
    post, err := NewPost(gjson.Parse(postFixture))
    require.NoError(t, err)
    assert.Equal(t, "0-123", post.ID)
    assert.Equal(t, `<w:attachment id="p1"/> hello #carat`, post.Body)
    assert.Equal(t, "hello #carat", post.PlainBody)
    assert.Equal(t, "https://weverse.io/seventeen/artist/0-123", post.ShareURL)
    assert.Equal(t, 120000, post.LikeCount)
    assert.Equal(t, 4321, post.CommentCount)
    assert.Equal(t, int64(1675239000000), post.PublishedAt)
    assert.False(t, post.IsBookmarked)
    assert.False(t, post.IsLocked)
    assert.False(t, post.IsHiddenFromArtist)
    assert.False(t, post.IsMembershipOnly)
    assert.False(t, post.HasProduct)
    assert.Equal(t, []string{"carat", "seventeen"}, post.Hashtags)
    assert.Equal(t, "NORMAL", post.PostType)
    assert.Equal(t, "ARTIST", post.SectionType)
    require.NotNil(t, post.Author)
    assert.Equal(t, "m2", post.Author.ID)
    require.NotNil(t, post.Community)
    assert.Equal(t, "14", post.Community.ID)
    assert.Equal(t, "SEVENTEEN", post.Community.Name)
    require.NotNil(t, post.LikeID)
    assert.Equal(t, "like-9", *post.LikeID)
    assert.Equal(t, "hello #carat", post.String())
  })

  t.Run("like id optional", func(t *testing.T) {
    payload, err := deleteKey(postFixture, "viewerEmotionId")
    require.NoError(t, err)
    post, err := NewPost(payload)
    require.NoError(t, err)
    assert.Nil(t, post.LikeID)
  })

  t.Run("author required", func(t *testing.T) {
    payload, err := deleteKey(postFixture, "author")
    require.NoError(t, err)
    _, err = NewPost(payload)
    var missing *common.MissingFieldError
    require.ErrorAs(t, err, &missing)
    assert.Equal(t, "post", missing.Kind)
    assert.Equal(t, "author", missing.Field)
  })

  t.Run("community required", func(t *testing.T) {
    payload, err := deleteKey(postFixture, "community")
    require.NoError(t, err)
    _, err = NewPost(payload)
    var missing *common.MissingFieldError
    require.ErrorAs(t, err, &missing)
    assert.Equal(t, "community", missing.Field)
  })
}

func TestPostAttachments(t *testing.T) {
  post, err := NewPost(gjson.Parse(postFixture))
  require.NoError(t, err)

  t.Run("photos in payload order", func(t *testing.T) {
    photos, err := post.Photos()
    require.NoError(t, err)
    require.Len(t, photos, 3)
    assert.Equal(t, "p1", photos[0].ID)
    assert.Equal(t, "p2", photos[1].ID)
    assert.Equal(t, "p3", photos[2].ID)
  })

  t.Run("single video", func(t *testing.T) {
    videos, err := post.Videos()
    require.NoError(t, err)
    require.Len(t, videos, 1)
    assert.Equal(t, "v1", videos[0].ID)
    assert.Equal(t, 60, videos[0].Duration)
  })

  t.Run("single snippet", func(t *testing.T) {
    snippets, err := post.Snippets()
    require.NoError(t, err)
    require.Len(t, snippets, 1)
    assert.Equal(t, "s1", snippets[0].ID)
  })

  t.Run("recomputed on every call", func(t *testing.T) {
    first, err := post.Photos()
    require.NoError(t, err)
    second, err := post.Photos()
    require.NoError(t, err)
    assert.Equal(t, first, second)
    assert.NotSame(t, first[0], second[0])
  })

  t.Run("empty photo bucket", func(t *testing.T) {
    payload, err := setKey(postFixture, "attachment.photo", `{}`)
    require.NoError(t, err)
    post, err := NewPost(payload)
    require.NoError(t, err)
    photos, err := post.Photos()
    require.NoError(t, err)
    assert.Len(t, photos, 0)
  })

  t.Run("absent attachment section", func(t *testing.T) {
    payload, err := deleteKey(postFixture, "attachment")
    require.NoError(t, err)
    post, err := NewPost(payload)
    require.NoError(t, err)

    photos, err := post.Photos()
    require.NoError(t, err)
    assert.Len(t, photos, 0)
    videos, err := post.Videos()
    require.NoError(t, err)
    assert.Len(t, videos, 0)
    snippets, err := post.Snippets()
    require.NoError(t, err)
    assert.Len(t, snippets, 0)
  })

  t.Run("malformed bucket entry", func(t *testing.T) {
    payload, err := setKey(postFixture, "attachment.photo.p2.url", `77`)
    require.NoError(t, err)
    post, err := NewPost(payload)
    require.NoError(t, err)
    _, err = post.Photos()
    var malformed *common.MalformedFieldError
    require.ErrorAs(t, err, &malformed)
    assert.Equal(t, "url", malformed.Field)
  })
}

func TestPostLikeSiblings(t *testing.T) {
  t.Run("same base shape", func(t *testing.T) {
    media, err := NewMedia(gjson.Parse(postFixture))
    require.NoError(t, err)
    live, err := NewLive(gjson.Parse(postFixture))
    require.NoError(t, err)
    moment, err := NewMoment(gjson.Parse(postFixture))
    require.NoError(t, err)

    assert.Equal(t, "0-123", media.ID)
    assert.Equal(t, "0-123", live.ID)
    assert.Equal(t, "0-123", moment.ID)
    assert.Equal(t, "media", media.EntityKind())
    assert.Equal(t, "live", live.EntityKind())
    assert.Equal(t, "moment", moment.EntityKind())
  })

  t.Run("post and media with same id do not compare", func(t *testing.T) {
    post, err := NewPost(gjson.Parse(postFixture))
    require.NoError(t, err)
    media, err := NewMedia(gjson.Parse(postFixture))
    require.NoError(t, err)

    _, err = post.Equals(media)
    var mismatch *common.KindMismatchError
    require.ErrorAs(t, err, &mismatch)
  })
}

func TestPostEquality(t *testing.T) {
  a, err := NewPost(gjson.Parse(postFixture))
  require.NoError(t, err)

  payload, err := setKey(postFixture, "emotionCount", `999`)
  require.NoError(t, err)
  b, err := NewPost(payload)
  require.NoError(t, err)

  equal, err := a.Equals(b)
  require.NoError(t, err)
  assert.True(t, equal)
  assert.Equal(t, a.Hash(), b.Hash())
}
