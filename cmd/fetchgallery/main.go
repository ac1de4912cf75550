// Command fetchgallery fetches one gallery page and prints the window of
// posts the detail view would receive around a post.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/savioxavier/termlink"
	flag "github.com/spf13/pflag"

	"github.com/llehouerou/openimg/internal/api"
	"github.com/llehouerou/openimg/internal/config"
	"github.com/llehouerou/openimg/internal/gallery"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	galleryCfg := cfg.GetGalleryConfig()
	apiCfg := cfg.GetAPIConfig()

	section := flag.StringP("section", "s", galleryCfg.Section, "gallery section: hot, top, user or r/<subreddit>")
	sort := flag.String("sort", galleryCfg.Sort, "sort: viral, top, time or rising")
	page := flag.IntP("page", "p", 0, "page to fetch")
	id := flag.String("id", "", "post to centre the window on")
	index := flag.IntP("index", "i", 0, "position of the post to centre on when --id is not set")
	window := flag.IntP("window", "w", galleryCfg.WindowSize, "window size")
	allowNSFW := flag.Bool("nsfw", *galleryCfg.AllowNSFWThumbnails, "print NSFW thumbnails")
	clientID := flag.String("client-id", apiCfg.ClientID, "API client id")
	flag.Parse()

	client := api.New(*clientID, apiCfg.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Printf("Fetching %s/%s page %d", *section, *sort, *page)
	posts, err := client.Gallery(ctx, *section, *sort, *page)
	if err != nil {
		log.Fatalf("Failed to fetch gallery: %v", err)
	}
	if len(posts) == 0 {
		log.Println("No posts")
		return
	}

	c := gallery.NewCollection(posts...)
	log.Printf("Fetched %d posts (%d unique)", len(posts), c.Len())

	center := *id
	if center == "" {
		p, ok := c.At(*index)
		if !ok {
			log.Fatalf("Index %d out of range [0, %d)", *index, c.Len())
		}
		center = p.ID
	}
	items, pos, err := c.WindowAround(center, *window)
	if err != nil {
		log.Fatalf("Failed to compute window: %v", err)
	}

	size, _ := gallery.ParseThumbnailSize(galleryCfg.ThumbnailSize)
	for i, p := range items {
		marker := " "
		if i == pos {
			marker = ">"
		}
		thumb := p.Thumbnail(size, *allowNSFW)
		thumbURL := thumb.URL
		if thumb.Hidden {
			thumbURL = "[nsfw]"
		}
		score := "-"
		if p.HasScore {
			score = gallery.FormatCount(p.Points)
		}
		// Titles link to the image in terminals that support hyperlinks.
		title := termlink.Link(p.Title, p.Link)
		fmt.Fprintf(os.Stdout, "%s %3d  %-8s %7s  %s\n      %s\n", marker, i, p.ID, score, title, thumbURL)
	}
}
