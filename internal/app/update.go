package app

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/api"
	"github.com/llehouerou/openimg/internal/app/navctl"
	"github.com/llehouerou/openimg/internal/app/popupctl"
	"github.com/llehouerou/openimg/internal/errmsg"
	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/state"
	"github.com/llehouerou/openimg/internal/ui"
	"github.com/llehouerou/openimg/internal/ui/action"
	"github.com/llehouerou/openimg/internal/ui/confirm"
	"github.com/llehouerou/openimg/internal/ui/gallerygrid"
	"github.com/llehouerou/openimg/internal/ui/headerbar"
	"github.com/llehouerou/openimg/internal/ui/helpbindings"
	"github.com/llehouerou/openimg/internal/ui/jobbar"
	"github.com/llehouerou/openimg/internal/ui/layout"
	"github.com/llehouerou/openimg/internal/ui/postview"
	"github.com/llehouerou/openimg/internal/ui/textinput"
	"github.com/llehouerou/openimg/internal/ui/uploadsview"
	"github.com/llehouerou/openimg/internal/uploads"
)

// Delete confirmation options.
const (
	optionDeleteLocal  = "Delete locally"
	optionDeleteRemote = "Delete locally and on server"
	optionCancel       = "Cancel"
)

const sectionHint = "hot, top, user or r/<subreddit>"

// deleteRequest is carried by the delete confirmation.
type deleteRequest struct {
	upload        state.Upload
	remoteOffered bool
}

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case GalleryLoadedMsg:
		return m.handleGalleryLoaded(msg)

	case CommentsLoadedMsg:
		return m.handleCommentsLoaded(msg)

	case UploadsLoadedMsg:
		if msg.Err != nil {
			m.setError(errmsg.Format(errmsg.OpUploadsLoad, msg.Err))
			return m, nil
		}
		m.Navigation.Uploads().SetUploads(msg.Uploads)
		return m, nil

	case UploadDoneMsg:
		if m.Jobs.Remove(msg.JobID) {
			m.resize()
		}
		m.sendUploadNotification(msg)
		if msg.Err != nil {
			m.Popups.ShowError(errmsg.FormatWith(errmsg.OpUpload, msg.Path, msg.Err))
			return m, nil
		}
		m.setStatus("Uploaded " + msg.Upload.URL)
		return m, m.loadUploadsCmd()

	case UploadDeletedMsg:
		return m.handleUploadDeleted(msg)

	case LinkCopiedMsg:
		if msg.Err != nil {
			m.setError(errmsg.Format(errmsg.OpLinkCopy, msg.Err))
		} else {
			m.setStatus("Copied " + msg.URL)
		}
		return m, nil
	}

	return m, nil
}

// resize lays out the views below the header and above the job bar and
// status line.
func (m *Model) resize() {
	contentHeight := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		JobBarHeight: jobbar.Height(m.Jobs.ActiveCount()),
		StatusHeight: ui.StatusHeight,
	})
	m.Navigation.SetSize(m.Width, contentHeight)
	m.Popups.SetSize(m.Width, m.Height)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	a := m.Keys.Resolve(msg.String())
	switch a { //nolint:exhaustive // view actions are forwarded below
	case "":
		return m, nil
	case keymap.ActionQuit:
		m.SaveNavigationState()
		return m, tea.Quit
	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp(m.Navigation.HelpContexts())
	case keymap.ActionViewGallery:
		m.switchView(navctl.ViewGallery)
		return m, nil
	case keymap.ActionViewUploads:
		m.switchView(navctl.ViewUploads)
		return m, nil
	case keymap.ActionNextView:
		m.Navigation.NextView()
		m.SaveNavigationState()
		return m, nil
	case keymap.ActionChangeSection:
		return m, m.Popups.ShowTextInput(popupctl.InputSection, "Gallery section",
			m.Navigation.Gallery().Section(), sectionHint)
	}

	cmd, err := m.Navigation.HandleAction(a)
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpPostOpen, err))
	}
	return m, cmd
}

func (m *Model) switchView(mode navctl.ViewMode) {
	m.Navigation.SetViewMode(mode)
	m.SaveNavigationState()
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	// Gallery
	case gallerygrid.OpenPost:
		return m, m.Navigation.OpenPost(a.Window, a.Index)
	case gallerygrid.LoadPage:
		return m, m.loadPage(a.Section, a.Page)
	case gallerygrid.NSFWToggled:
		if err := m.StateMgr.SetBool(state.PrefAllowNSFWThumbnails, a.Allow); err != nil {
			m.setError(errmsg.Format(errmsg.OpPreferenceSave, err))
		} else if a.Allow {
			m.setStatus("NSFW thumbnails shown")
		} else {
			m.setStatus("NSFW thumbnails hidden")
		}
		return m, nil
	case gallerygrid.SelectionChanged:
		m.SaveNavigationState()
		return m, nil

	// Post detail
	case postview.LoadComments:
		return m, m.loadCommentsCmd(a.PostID)
	case postview.PostChanged:
		m.Navigation.Gallery().SelectID(a.PostID)
		m.SaveNavigationState()
		return m, nil
	case postview.Close:
		m.Navigation.ClosePost()
		return m, nil

	// Uploads
	case uploadsview.CopyLink:
		return m, m.copyLinkCmd(a.Upload.URL)
	case uploadsview.ShowLink:
		m.Popups.ShowLink(a.Upload.URL)
		return m, nil
	case uploadsview.DeleteRequested:
		return m, m.confirmDelete(a.Upload)
	case uploadsview.UploadRequested:
		return m, m.Popups.ShowTextInput(popupctl.InputUploadPath, "Upload image", "", "Path of the image file")

	// Popups
	case confirm.Result:
		m.Popups.Hide(popupctl.Confirm)
		req, ok := a.Context.(deleteRequest)
		if !ok || !a.Confirmed {
			return m, nil
		}
		remote := req.remoteOffered && a.Option == 1
		return m, m.deleteUploadCmd(req.upload, remote)
	case textinput.Result:
		return m.handleTextInputResult(a)
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
		return m, nil
	}
	return m, nil
}

func (m *Model) loadPage(section string, page int) tea.Cmd {
	m.Navigation.Gallery().SetLoading(true)
	return m.loadGalleryCmd(section, page)
}

func (m *Model) confirmDelete(u state.Upload) tea.Cmd {
	req := deleteRequest{upload: u, remoteOffered: m.Uploads.CanDeleteRemote(u)}
	options := []string{optionDeleteLocal, optionCancel}
	if req.remoteOffered {
		options = []string{optionDeleteLocal, optionDeleteRemote, optionCancel}
	}
	return m.Popups.ShowConfirmWithOptions("Delete upload", u.URL, options, req)
}

func (m Model) handleTextInputResult(res textinput.Result) (tea.Model, tea.Cmd) {
	mode, _ := res.Context.(popupctl.InputMode)
	m.Popups.Hide(popupctl.TextInput)
	if res.Canceled {
		return m, nil
	}

	switch mode {
	case popupctl.InputSection:
		return m, m.changeSection(res.Text)
	case popupctl.InputUploadPath:
		path := expandPath(strings.TrimSpace(res.Text))
		if path == "" {
			return m, nil
		}
		jobID := m.startUploadJob(path)
		m.setStatus("Uploading " + filepath.Base(path) + "…")
		return m, m.uploadCmd(jobID, path)
	case popupctl.InputNone:
	}
	return m, nil
}

// startUploadJob shows the upload in the job bar and returns its id.
func (m *Model) startUploadJob(path string) string {
	m.nextJobID++
	id := strconv.Itoa(m.nextJobID)
	job := jobbar.Job{ID: id, Label: "Uploading " + filepath.Base(path)}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		job.Size = info.Size()
	}
	m.Jobs.Add(job)
	m.resize()
	return id
}

// changeSection switches the gallery to section and loads its first page.
func (m *Model) changeSection(input string) tea.Cmd {
	section := normalizeSection(input)
	if section == "" {
		return nil
	}
	g := m.Navigation.Gallery()
	m.Navigation.ClosePost()
	m.Navigation.SetViewMode(navctl.ViewGallery)
	g.SetSection(section)
	m.PendingSelectID = ""
	m.SaveNavigationState()
	return m.loadPage(section, 0)
}

// normalizeSection trims spaces and slashes; subreddit sections keep their
// "r/" prefix.
func normalizeSection(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if sub, ok := strings.CutPrefix(s, "r/"); ok {
		sub = strings.Trim(sub, "/ ")
		if sub == "" {
			return ""
		}
		return "r/" + sub
	}
	return strings.ToLower(s)
}

func (m Model) handleGalleryLoaded(msg GalleryLoadedMsg) (tea.Model, tea.Cmd) {
	g := m.Navigation.Gallery()
	if msg.Section != g.Section() {
		// The section was switched while loading.
		return m, nil
	}
	g.SetLoading(false)

	if msg.Err != nil {
		log.Printf("app: load %s page %d: %v", msg.Section, msg.Page, msg.Err)
		op := errmsg.OpGalleryLoad
		if msg.Page > 0 {
			op = errmsg.OpGalleryNext
		}
		m.setError(errmsg.FormatWith(op, msg.Section, msg.Err))
		return m, nil
	}

	if msg.Page == 0 {
		g.SetPosts(msg.Posts)
		if m.PendingSelectID != "" {
			g.SelectID(m.PendingSelectID)
			m.PendingSelectID = ""
		}
		m.setStatus(fmt.Sprintf("Loaded %d posts from %s", g.Len(), msg.Section))
		return m, nil
	}

	added := g.AppendPosts(msg.Page, msg.Posts)
	if added == 0 {
		m.setStatus("No more posts")
	} else {
		m.setStatus(fmt.Sprintf("Loaded %d more posts", added))
	}
	return m, nil
}

func (m Model) handleCommentsLoaded(msg CommentsLoadedMsg) (tea.Model, tea.Cmd) {
	post := m.Navigation.Post()
	if msg.Err == nil {
		if post != nil {
			post.SetComments(msg.PostID, msg.Comments)
		}
		return m, nil
	}

	log.Printf("app: load comments of %s: %v", msg.PostID, msg.Err)
	if post != nil {
		post.SetCommentsError(msg.PostID, msg.Err)
	}
	var statusErr *api.StatusError
	if errors.As(msg.Err, &statusErr) && statusErr.Status == http.StatusNotFound {
		// Deleted on the server since the page was loaded.
		m.Navigation.Gallery().Remove(msg.PostID)
		m.setStatus("Post " + msg.PostID + " no longer exists")
	}
	return m, nil
}

func (m Model) handleUploadDeleted(msg UploadDeletedMsg) (tea.Model, tea.Cmd) {
	reload := m.loadUploadsCmd()
	if msg.Err == nil || errors.Is(msg.Err, uploads.ErrRemoteDelete) {
		m.Navigation.Uploads().RemoveUpload(msg.Upload.ID)
	}
	switch {
	case errors.Is(msg.Err, uploads.ErrRemoteDelete):
		// The local record is gone, only the server copy survived.
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpRemoteDelete, msg.Upload.URL, msg.Err))
	case msg.Err != nil:
		m.setError(errmsg.Format(errmsg.OpUploadDelete, msg.Err))
	case msg.Remote:
		m.setStatus("Deleted locally and on server")
	default:
		m.setStatus("Deleted locally")
	}
	return m, reload
}

func expandPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
