package community_test

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/dalemusser/wandernext/internal/app/features/community"
	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/store/forum"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/wandernext/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*community.Handler, *forum.Store, *testutil.Fixtures) {
	t.Helper()
	docs := testutil.SetupTestStore(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	f := forum.New(docs, logger)
	ids := identity.New(docs, testutil.ModeratorLoginID, logger)
	fixtures := testutil.NewFixtures(t, docs)
	return community.NewHandler(f, ids, errLog, logger), f, fixtures
}

func asTestUser(a models.Account) testutil.TestUser {
	return testutil.TestUser{ID: a.ID, Name: a.LoginID, LoginID: a.LoginID, Role: a.Role}
}

func submitPost(t *testing.T, h *community.Handler, user testutil.TestUser, title, body string) {
	t.Helper()
	req := testutil.NewFormRequest("/community/posts", url.Values{
		"title":    {title},
		"body":     {body},
		"category": {"tips"},
		"tags":     {"food, beaches"},
	}.Encode())
	req = testutil.WithUser(req, user)
	rec := testutil.NewRecorder()
	h.HandleSubmitPost(rec, req)
	rec.AssertRedirect(t, "/community?submitted=1")
}

func TestServeFeed_Renders(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/community")
	rec := testutil.NewRecorder()

	testutil.ServeWithRecover(handler.ServeFeed, rec, req)
}

func TestHandleSubmitPost_LandsInPendingQueue(t *testing.T) {
	handler, f, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := asTestUser(fixtures.CreateTraveler(ctx, "maya@example.com"))

	submitPost(t, handler, author, "Hidden beaches near Lisbon", "Take the train to Cascais and walk south.")

	pending, err := f.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending: got %d posts, want 1", len(pending))
	}
	if pending[0].AuthorID != author.ID {
		t.Errorf("author: got %q, want %q", pending[0].AuthorID, author.ID)
	}

	posts, err := f.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("feed: got %d posts before approval, want 0", len(posts))
	}
}

func TestHandleSubmitPost_EmptyTitleRejected(t *testing.T) {
	handler, f, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := asTestUser(fixtures.CreateTraveler(ctx, "maya@example.com"))

	req := testutil.NewFormRequest("/community/posts", url.Values{
		"title": {"   "},
		"body":  {"Body without a title."},
	}.Encode())
	req = testutil.WithUser(req, author)
	rec := testutil.NewRecorder()

	testutil.ServeWithRecover(handler.HandleSubmitPost, rec, req)

	if rec.Code == http.StatusSeeOther {
		t.Error("expected empty title to not redirect as success")
	}
	pending, err := f.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending: got %d posts, want 0", len(pending))
	}
}

func TestHandleToggleLike_HTMXReturnsFragment(t *testing.T) {
	handler, f, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := asTestUser(fixtures.CreateTraveler(ctx, "maya@example.com"))
	mod := asTestUser(fixtures.CreateModerator(ctx))

	post, err := f.Submit(ctx, author.ID, "Night markets in Taipei", "Start at Raohe and eat everything.", "food", "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := f.Approve(ctx, mod.ID, post.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("POST", "/community/posts/"+strconv.Itoa(post.ID)+"/like", author)
	req = testutil.WithChiURLParam(req, "postID", strconv.Itoa(post.ID))
	req.Header.Set("HX-Request", "true")
	rec := testutil.NewRecorder()

	handler.HandleToggleLike(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "♥ 1")

	// Second toggle unlikes.
	req = testutil.NewAuthenticatedRequest("POST", "/community/posts/"+strconv.Itoa(post.ID)+"/like", author)
	req = testutil.WithChiURLParam(req, "postID", strconv.Itoa(post.ID))
	req.Header.Set("HX-Request", "true")
	rec = testutil.NewRecorder()

	handler.HandleToggleLike(rec, req)

	rec.AssertContains(t, "♡ 0")
}

func TestHandleAddComment_WhitespaceDropped(t *testing.T) {
	handler, f, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := asTestUser(fixtures.CreateTraveler(ctx, "maya@example.com"))
	mod := fixtures.CreateModerator(ctx)

	post, err := f.Submit(ctx, author.ID, "Packing light", "One bag is enough.", "tips", "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := f.Approve(ctx, mod.ID, post.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	for _, text := range []string{"Great tip!", "   "} {
		req := testutil.NewFormRequest("/community/posts/"+strconv.Itoa(post.ID)+"/comments", url.Values{"text": {text}}.Encode())
		req = testutil.WithUser(req, author)
		req = testutil.WithChiURLParam(req, "postID", strconv.Itoa(post.ID))
		rec := testutil.NewRecorder()
		handler.HandleAddComment(rec, req)
		rec.AssertRedirect(t, "/community")
	}

	comments, err := f.Comments(ctx, post.ID)
	if err != nil {
		t.Fatalf("Comments failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("comments: got %d, want 1 (whitespace comment dropped)", len(comments))
	}
}

func TestHandleApprove_MovesPostToFeed(t *testing.T) {
	handler, f, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := asTestUser(fixtures.CreateTraveler(ctx, "maya@example.com"))
	mod := asTestUser(fixtures.CreateModerator(ctx))

	post, err := f.Submit(ctx, author.ID, "Cheap eats in Rome", "Skip the piazzas, eat in Testaccio.", "food", "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("POST", "/community/moderation/"+strconv.Itoa(post.ID)+"/approve", mod)
	req = testutil.WithChiURLParam(req, "postID", strconv.Itoa(post.ID))
	rec := testutil.NewRecorder()

	handler.HandleApprove(rec, req)

	rec.AssertRedirect(t, "/community/moderation")

	posts, err := f.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != post.ID {
		t.Fatalf("feed after approve: got %v, want the approved post", posts)
	}
}

func TestHandleApprove_TravelerForbidden(t *testing.T) {
	handler, f, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := asTestUser(fixtures.CreateTraveler(ctx, "maya@example.com"))

	post, err := f.Submit(ctx, author.ID, "Self approval", "Should not work.", "", "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("POST", "/community/moderation/"+strconv.Itoa(post.ID)+"/approve", author)
	req = testutil.WithChiURLParam(req, "postID", strconv.Itoa(post.ID))
	rec := testutil.NewRecorder()

	testutil.ServeWithRecover(handler.HandleApprove, rec, req)

	if rec.Code == http.StatusSeeOther {
		t.Error("expected traveler approve to be refused")
	}
	pending, err := f.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending: got %d posts, want 1 (still queued)", len(pending))
	}
}

func TestHandleReject_DropsPost(t *testing.T) {
	handler, f, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := asTestUser(fixtures.CreateTraveler(ctx, "maya@example.com"))
	mod := asTestUser(fixtures.CreateModerator(ctx))

	post, err := f.Submit(ctx, author.ID, "Spam", "Buy my thing.", "", "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("POST", "/community/moderation/"+strconv.Itoa(post.ID)+"/reject", mod)
	req = testutil.WithChiURLParam(req, "postID", strconv.Itoa(post.ID))
	rec := testutil.NewRecorder()

	handler.HandleReject(rec, req)

	rec.AssertRedirect(t, "/community/moderation")

	pending, _ := f.Pending(ctx)
	posts, _ := f.Posts(ctx)
	if len(pending) != 0 || len(posts) != 0 {
		t.Errorf("after reject: pending=%d feed=%d, want both 0", len(pending), len(posts))
	}
}

func TestHandleRemove_PurgesApprovedPost(t *testing.T) {
	handler, f, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := asTestUser(fixtures.CreateTraveler(ctx, "maya@example.com"))
	mod := asTestUser(fixtures.CreateModerator(ctx))

	post, err := f.Submit(ctx, author.ID, "Old news", "This will be removed.", "", "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := f.Approve(ctx, mod.ID, post.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if _, err := f.AddComment(ctx, post.ID, author.ID, "Interesting"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("POST", "/community/posts/"+strconv.Itoa(post.ID)+"/remove", mod)
	req = testutil.WithChiURLParam(req, "postID", strconv.Itoa(post.ID))
	rec := testutil.NewRecorder()

	handler.HandleRemove(rec, req)

	rec.AssertRedirect(t, "/community")

	posts, _ := f.Posts(ctx)
	if len(posts) != 0 {
		t.Errorf("feed after remove: got %d posts, want 0", len(posts))
	}
	comments, _ := f.Comments(ctx, post.ID)
	if len(comments) != 0 {
		t.Errorf("comments after remove: got %d, want 0", len(comments))
	}
}
