package uploadsview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/state"
	"github.com/llehouerou/openimg/internal/ui/testutil"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(uploads ...state.Upload) Model {
	m := New()
	m.now = func() time.Time { return testNow }
	m.SetSize(100, 20)
	m.SetFocused(true)
	m.SetUploads(uploads)
	return m
}

func sampleUploads() []state.Upload {
	return []state.Upload{
		{ID: 2, URL: "https://imgur.com/a/album1", DeleteHash: "h2", IsAlbum: true, CreatedAt: testNow.Add(-time.Hour)},
		{ID: 1, URL: "https://i.imgur.com/photo1.jpg", CreatedAt: testNow.Add(-48 * time.Hour)},
	}
}

func TestHandleAction_CopyLink(t *testing.T) {
	m := newTestModel(sampleUploads()...)

	copyLink, ok := testutil.ActionOf[CopyLink](m.HandleAction(keymap.ActionCopyLink))

	require.True(t, ok)
	assert.Equal(t, int64(2), copyLink.Upload.ID)
}

func TestHandleAction_ShowAndDelete(t *testing.T) {
	m := newTestModel(sampleUploads()...)
	m.HandleAction(keymap.ActionMoveDown)

	show, ok := testutil.ActionOf[ShowLink](m.HandleAction(keymap.ActionSelect))
	require.True(t, ok)
	assert.Equal(t, "https://i.imgur.com/photo1.jpg", show.Upload.URL)

	del, ok := testutil.ActionOf[DeleteRequested](m.HandleAction(keymap.ActionDelete))
	require.True(t, ok)
	assert.Equal(t, int64(1), del.Upload.ID)
}

func TestHandleAction_EmptyList(t *testing.T) {
	m := newTestModel()

	assert.Nil(t, m.HandleAction(keymap.ActionCopyLink))
	assert.Nil(t, m.HandleAction(keymap.ActionDelete))
	assert.Nil(t, m.HandleAction(keymap.ActionSelect))

	_, ok := testutil.ActionOf[UploadRequested](m.HandleAction(keymap.ActionUpload))
	assert.True(t, ok, "upload is offered on an empty list")
}

func TestRemoveUpload(t *testing.T) {
	m := newTestModel(sampleUploads()...)

	assert.True(t, m.RemoveUpload(2))
	assert.Equal(t, 1, m.Len())
	u, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), u.ID)

	assert.False(t, m.RemoveUpload(2), "already gone")
	assert.Equal(t, 1, m.Len())
}

func TestSetUploads_DropsRepeatedIDs(t *testing.T) {
	uploads := append(sampleUploads(), state.Upload{ID: 2, URL: "https://imgur.com/a/dup"})
	m := newTestModel(uploads...)

	assert.Equal(t, 2, m.Len())
}

func TestView(t *testing.T) {
	m := newTestModel(sampleUploads()...)

	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "Uploads · 2")
	assert.Contains(t, view, "https://imgur.com/a/album1")
	assert.Contains(t, view, "album · 1 hour ago")
	assert.Contains(t, view, "local only · photo · 2 days ago")
}

func TestView_EmptyState(t *testing.T) {
	m := newTestModel()

	assert.Contains(t, testutil.StripANSI(m.View()), "No uploads yet.")
}
