package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment does not exist")
var ErrAlreadyLiked = errors.New("post already liked")
var ErrNotLiked = errors.New("post has not yet been liked")

// Like marks that a user liked a post. Likes behave as an ordered set keyed
// by UserID: at most one entry per user.
type Like struct {
	UserID string `json:"user" bson:"user_id"`
}

// Comment is a reply on a post. AuthorName and AuthorAvatar are snapshots
// taken when the comment is created and never refreshed.
type Comment struct {
	ID           string    `json:"id" bson:"id"`
	AuthorID     string    `json:"user" bson:"author_id"`
	Text         string    `json:"text" bson:"text"`
	AuthorName   string    `json:"name" bson:"author_name"`
	AuthorAvatar string    `json:"avatar" bson:"author_avatar"`
	CreatedAt    time.Time `json:"date" bson:"created_at"`
}

// Post is a published message with its engagement sub-collections. The whole
// document is loaded and replaced per mutation; Version guards the replace.
type Post struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	AuthorID     string    `json:"user" bson:"author_id"`
	Text         string    `json:"text" bson:"text"`
	AuthorName   string    `json:"name" bson:"author_name"`
	AuthorAvatar string    `json:"avatar" bson:"author_avatar"`
	Likes        []Like    `json:"likes" bson:"likes"`
	Comments     []Comment `json:"comments" bson:"comments"`
	Version      int64     `json:"-" bson:"version"`
	CreatedAt    time.Time `json:"date" bson:"created_at"`
}

// LikedBy reports whether userID already has a like on the post.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the comment with the given ID, or nil when absent.
func (p *Post) CommentByID(id string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			return &p.Comments[i]
		}
	}
	return nil
}
