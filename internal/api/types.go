package api

import (
	"encoding/json"
	"time"

	"github.com/llehouerou/openimg/internal/comments"
	"github.com/llehouerou/openimg/internal/gallery"
)

// envelope wraps every API response.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
	Status  int             `json:"status"`
}

// errorMessage extracts the error text from a failed response. The error
// field is either a string or an object with a message.
func (e envelope) errorMessage() string {
	var data struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(e.Data, &data); err != nil || len(data.Error) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(data.Error, &text); err == nil {
		return text
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data.Error, &obj); err == nil {
		return obj.Message
	}
	return ""
}

type uploadResult struct {
	ID         string `json:"id"`
	Link       string `json:"link"`
	DeleteHash string `json:"deletehash"`
}

type postResult struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Datetime     int64   `json:"datetime"`
	Type         string  `json:"type"`
	Link         string  `json:"link"`
	MP4          string  `json:"mp4"`
	IsAlbum      bool    `json:"is_album"`
	Cover        string  `json:"cover"`
	ImagesCount  int     `json:"images_count"`
	Ups          *int    `json:"ups"`
	Downs        *int    `json:"downs"`
	Points       *int    `json:"points"`
	Vote         *string `json:"vote"`
	Favorite     bool    `json:"favorite"`
	NSFW         *bool   `json:"nsfw"`
	CommentCount int     `json:"comment_count"`
	AccountURL   *string `json:"account_url"`
}

type commentResult struct {
	ID       int64           `json:"id"`
	ImageID  string          `json:"image_id"`
	Comment  string          `json:"comment"`
	Author   string          `json:"author"`
	Ups      int             `json:"ups"`
	Downs    int             `json:"downs"`
	Points   int             `json:"points"`
	Datetime int64           `json:"datetime"`
	ParentID int64           `json:"parent_id"`
	Children []commentResult `json:"children"`
}

func convertPosts(results []postResult) []gallery.Post {
	posts := make([]gallery.Post, 0, len(results))
	for i := range results {
		r := &results[i]
		p := gallery.Post{
			ID:           r.ID,
			Title:        r.Title,
			Link:         r.Link,
			Type:         r.Type,
			IsAlbum:      r.IsAlbum,
			Cover:        r.Cover,
			MP4:          r.MP4,
			Favorited:    r.Favorite,
			ImageCount:   r.ImagesCount,
			CommentCount: r.CommentCount,
			Datetime:     time.Unix(r.Datetime, 0),
		}
		if r.NSFW != nil {
			p.NSFW = *r.NSFW
		}
		if r.Vote != nil {
			p.Vote = gallery.Vote(*r.Vote)
		}
		if r.AccountURL != nil {
			p.Account = *r.AccountURL
		}
		if r.Ups != nil && r.Downs != nil {
			p.HasScore = true
			p.Ups = *r.Ups
			p.Downs = *r.Downs
			if r.Points != nil {
				p.Points = *r.Points
			} else {
				p.Points = p.Ups - p.Downs
			}
		}
		posts = append(posts, p)
	}
	return posts
}

func convertComments(results []commentResult) []comments.Comment {
	if len(results) == 0 {
		return nil
	}
	out := make([]comments.Comment, 0, len(results))
	for i := range results {
		r := &results[i]
		out = append(out, comments.Comment{
			ID:       r.ID,
			PostID:   r.ImageID,
			ParentID: r.ParentID,
			Author:   r.Author,
			Body:     r.Comment,
			Points:   r.Points,
			Ups:      r.Ups,
			Downs:    r.Downs,
			Date:     time.Unix(r.Datetime, 0),
			Children: convertComments(r.Children),
		})
	}
	return out
}
