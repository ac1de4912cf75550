package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/app/navctl"
	"github.com/llehouerou/openimg/internal/app/popupctl"
	"github.com/llehouerou/openimg/internal/config"
	"github.com/llehouerou/openimg/internal/errmsg"
	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/notify"
	"github.com/llehouerou/openimg/internal/state"
	"github.com/llehouerou/openimg/internal/ui/gallerygrid"
	"github.com/llehouerou/openimg/internal/ui/jobbar"
	"github.com/llehouerou/openimg/internal/ui/uploadsview"
)

// Model is the root application model containing all state.
type Model struct {
	Navigation   *navctl.Manager
	Popups       *popupctl.Manager
	Keys         *keymap.Resolver
	StateMgr     state.Interface
	API          GalleryAPI
	Uploads      UploadService
	Clipboard    ClipboardWriter
	Sort         string
	CommentsSort string
	StatusMsg    string
	StatusIsErr  bool
	// PendingSelectID is the post to select once the first page arrives.
	PendingSelectID string
	Width           int
	Height          int

	// Jobs lists the uploads in flight.
	Jobs      jobbar.State
	nextJobID int

	notifier            notify.Notifier
	notificationsConfig config.NotificationsConfig
}

// Deps are the collaborators of the application model.
type Deps struct {
	Config    *config.Config
	State     state.Interface
	API       GalleryAPI
	Uploads   UploadService
	Clipboard ClipboardWriter
	Notifier  notify.Notifier // nil disables desktop notifications
}

// New creates the application model, restoring the last navigation state
// and the NSFW thumbnail preference.
func New(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	galleryCfg := cfg.GetGalleryConfig()

	section, sort := galleryCfg.Section, galleryCfg.Sort
	viewMode := navctl.ViewGallery
	var selectID, status string

	navState, err := deps.State.GetNavigation()
	switch {
	case err != nil:
		log.Printf("app: restore navigation: %v", err)
		status = errmsg.Format(errmsg.OpNavigationLoad, err)
	case navState != nil:
		if navState.Section != "" {
			section = navState.Section
		}
		if navState.Sort != "" {
			sort = navState.Sort
		}
		viewMode = navctl.ParseViewMode(navState.ViewMode)
		selectID = navState.SelectedPostID
	}

	allowNSFW, err := deps.State.GetBool(state.PrefAllowNSFWThumbnails, *galleryCfg.AllowNSFWThumbnails)
	if err != nil {
		log.Printf("app: read nsfw preference: %v", err)
		allowNSFW = *galleryCfg.AllowNSFWThumbnails
	}

	thumbSize, _ := gallery.ParseThumbnailSize(galleryCfg.ThumbnailSize)
	galleryView := gallerygrid.New(section, gallerygrid.Options{
		ThumbnailSize: thumbSize,
		WindowSize:    galleryCfg.WindowSize,
		AllowNSFW:     allowNSFW,
	})

	nav := navctl.New(galleryView, uploadsview.New())
	nav.SetViewMode(viewMode)

	m := Model{
		Navigation:      nav,
		Popups:          popupctl.New(),
		Keys:            keymap.Default(),
		StateMgr:        deps.State,
		API:             deps.API,
		Uploads:         deps.Uploads,
		Clipboard:       deps.Clipboard,
		Sort:            sort,
		CommentsSort:    cfg.GetCommentsConfig().Sort,
		PendingSelectID: selectID,

		notifier:            deps.Notifier,
		notificationsConfig: cfg.GetNotificationsConfig(),
	}
	if status != "" {
		m.setError(status)
	} else if !cfg.HasAPIConfig() {
		m.setError("No API client id configured: set [api] client_id in config.toml")
	}
	return m
}

// Init implements tea.Model. It loads the first gallery page and the local
// uploads.
func (m Model) Init() tea.Cmd {
	g := m.Navigation.Gallery()
	g.SetLoading(true)
	return tea.Batch(
		m.loadGalleryCmd(g.Section(), 0),
		m.loadUploadsCmd(),
	)
}

func (m *Model) setStatus(msg string) {
	m.StatusMsg = msg
	m.StatusIsErr = false
}

func (m *Model) setError(msg string) {
	m.StatusMsg = msg
	m.StatusIsErr = true
}
