package gallery

import (
	"path"
	"strings"
)

// ThumbnailSize is the single letter suffix the image host appends to an id
// to serve a resized copy.
type ThumbnailSize string

const (
	ThumbSmallSquare ThumbnailSize = "s"
	ThumbBigSquare   ThumbnailSize = "b"
	ThumbSmall       ThumbnailSize = "t"
	ThumbMedium      ThumbnailSize = "m"
	ThumbLarge       ThumbnailSize = "l"
	ThumbHuge        ThumbnailSize = "h"

	// ThumbGallery is the size used for gallery rows.
	ThumbGallery = ThumbBigSquare
)

const (
	imageHost = "https://i.imgur.com/"
	mimeGIF   = "image/gif"
	extGIF    = ".gif"
	extJPG    = ".jpg"
)

// ParseThumbnailSize returns the size for s, or false if s is not a known size.
func ParseThumbnailSize(s string) (ThumbnailSize, bool) {
	switch size := ThumbnailSize(s); size {
	case ThumbSmallSquare, ThumbBigSquare, ThumbSmall, ThumbMedium, ThumbLarge, ThumbHuge:
		return size, true
	}
	return "", false
}

// Thumbnail is the image a gallery row should show for a post.
type Thumbnail struct {
	URL    string
	Hidden bool // NSFW post with NSFW thumbnails disabled
}

// Thumbnail picks the thumbnail for the post at the given size.
func (p Post) Thumbnail(size ThumbnailSize, allowNSFW bool) Thumbnail {
	if p.NSFW && !allowNSFW {
		return Thumbnail{Hidden: true}
	}

	switch {
	case p.IsAlbum:
		return Thumbnail{URL: CoverURL(p.Cover, size)}
	case p.MP4 != "" && p.linkIsThumbnail() && p.Type == mimeGIF:
		// Large gifs are served as a thumbed link next to the mp4; keep the
		// gif extension so the preview still animates.
		return Thumbnail{URL: ThumbnailURL(p.ID, size, extGIF)}
	default:
		return Thumbnail{URL: ThumbnailURL(p.ID, size, linkExt(p.Link))}
	}
}

// linkIsThumbnail reports whether the link already points at a resized copy
// (the file name is the id followed by a size letter).
func (p Post) linkIsThumbnail() bool {
	name := strings.TrimSuffix(path.Base(p.Link), path.Ext(p.Link))
	if !strings.HasPrefix(name, p.ID) || len(name) != len(p.ID)+1 {
		return false
	}
	_, ok := ParseThumbnailSize(name[len(p.ID):])
	return ok
}

// ThumbnailURL builds the thumbnail URL for an image id.
// An empty ext defaults to .jpg.
func ThumbnailURL(id string, size ThumbnailSize, ext string) string {
	if ext == "" {
		ext = extJPG
	}
	return imageHost + id + string(size) + ext
}

// CoverURL builds the thumbnail URL of an album cover.
func CoverURL(coverID string, size ThumbnailSize) string {
	if coverID == "" {
		return ""
	}
	return ThumbnailURL(coverID, size, extJPG)
}

func linkExt(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	return strings.ToLower(path.Ext(link))
}
