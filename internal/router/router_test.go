package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/comment"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/gameconfig"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/mocks"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/user"
	"github.com/MyelinBots/nabeatsu-go/internal/services/comments"
	"github.com/MyelinBots/nabeatsu-go/internal/services/game"
	"github.com/MyelinBots/nabeatsu-go/internal/services/likes"
	"github.com/MyelinBots/nabeatsu-go/internal/services/uploads"
	"github.com/MyelinBots/nabeatsu-go/internal/services/users"
	"go.uber.org/mock/gomock"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testEnv struct {
	handler   http.Handler
	users     *mocks.MockUserRepository
	comments  *mocks.MockCommentRepository
	likes     *mocks.MockLikeRepository
	gameCfg   *mocks.MockGameConfigRepository
	uploadDir string
}

func setupTest(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		users:     mocks.NewMockUserRepository(ctrl),
		comments:  mocks.NewMockCommentRepository(ctrl),
		likes:     mocks.NewMockLikeRepository(ctrl),
		gameCfg:   mocks.NewMockGameConfigRepository(ctrl),
		uploadDir: t.TempDir(),
	}

	userService := users.New(env.users)
	env.handler = Init(&Services{
		Users:          userService,
		Comments:       comments.New(env.comments, userService),
		Likes:          likes.New(env.likes, userService),
		Game:           game.New(env.gameCfg),
		Uploads:        uploads.New(env.uploadDir),
		Health:         fakePinger{},
		MaxUploadBytes: 1 << 20,
	})
	return env
}

func (env *testEnv) knownUser(lineUserID string, id uint) {
	env.users.EXPECT().
		GetUserByLineUserID(gomock.Any(), lineUserID).
		Return(&user.User{ID: id, LineUserID: lineUserID, DisplayName: "Taro", PictureURL: "https://pic/taro"}, nil).
		AnyTimes()
}

func (env *testEnv) unknownUser(lineUserID string) {
	env.users.EXPECT().GetUserByLineUserID(gomock.Any(), lineUserID).Return(nil, nil).AnyTimes()
}

func (env *testEnv) do(method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) HTTPError {
	t.Helper()
	var e HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return e
}

func TestLogin(t *testing.T) {
	env := setupTest(t)
	env.users.EXPECT().
		UpsertUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			if u.LineUserID != "U1" {
				t.Errorf("expected alias external_id to be used, got %q", u.LineUserID)
			}
			u.ID = 7
			return nil
		})

	rec := env.do(http.MethodPost, "/api/users/login", `{"external_id":"U1","display_name":"Taro","picture_url":"https://pic"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var u user.User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if u.ID != 7 || u.DisplayName != "Taro" {
		t.Errorf("unexpected user %+v", u)
	}
}

func TestLogin_MissingID(t *testing.T) {
	env := setupTest(t)

	rec := env.do(http.MethodPost, "/api/users/login", `{"display_name":"Taro"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if e := decodeError(t, rec); e.Message != "Missing line_user_id" {
		t.Errorf("unexpected message %q", e.Message)
	}
}

func TestLogin_MalformedJSON(t *testing.T) {
	env := setupTest(t)

	rec := env.do(http.MethodPost, "/api/users/login", `{"line_user_id":`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if e := decodeError(t, rec); e.ErrorCode != ErrParsing {
		t.Errorf("expected %s, got %s", ErrParsing, e.ErrorCode)
	}
}

func TestListComments_Defaults(t *testing.T) {
	env := setupTest(t)
	env.comments.EXPECT().
		ListTopLevel(gomock.Any(), nil, comment.OrderNewest, 10, 0).
		Return([]comment.CommentView{{ID: 1, Content: "hi"}}, nil)

	rec := env.do(http.MethodGet, "/api/comments", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var views []comment.CommentView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 1 || views[0].Content != "hi" {
		t.Errorf("unexpected views %+v", views)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestListComments_EmptyIsArray(t *testing.T) {
	env := setupTest(t)
	env.comments.EXPECT().ListTopLevel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := env.do(http.MethodGet, "/api/comments", "", nil)
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %q", rec.Body.String())
	}
}

func TestListComments_TopSortWithViewer(t *testing.T) {
	env := setupTest(t)
	env.knownUser("U1", 3)

	env.comments.EXPECT().
		ListTopLevel(gomock.Any(), gomock.Any(), comment.OrderTop, 5, 20).
		DoAndReturn(func(_ context.Context, viewer *uint, _ comment.Order, _, _ int) ([]comment.CommentView, error) {
			if viewer == nil || *viewer != 3 {
				t.Errorf("expected viewer 3, got %v", viewer)
			}
			return []comment.CommentView{}, nil
		})

	rec := env.do(http.MethodGet, "/api/comments?limit=5&offset=20&sort=top", "", map[string]string{LineUserHeader: "U1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestListComments_BadPaging(t *testing.T) {
	for _, q := range []string{"limit=abc", "offset=x", "limit=-1", "offset=-5", "limit=101", "limit=1099511627776"} {
		t.Run(q, func(t *testing.T) {
			env := setupTest(t)
			rec := env.do(http.MethodGet, "/api/comments?"+q, "", nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if e := decodeError(t, rec); e.Message != "Invalid limit or offset" {
				t.Errorf("unexpected message %q", e.Message)
			}
		})
	}
}

func TestListComments_UnknownViewer(t *testing.T) {
	env := setupTest(t)
	env.unknownUser("ghost")

	rec := env.do(http.MethodGet, "/api/comments", "", map[string]string{LineUserHeader: "ghost"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestListComments_InternalErrorDoesNotLeak(t *testing.T) {
	env := setupTest(t)
	env.comments.EXPECT().
		ListTopLevel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: relation \"comments\" does not exist"))

	rec := env.do(http.MethodGet, "/api/comments", "", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "relation") {
		t.Errorf("internal error leaked: %s", rec.Body.String())
	}
	if e := decodeError(t, rec); e.Message != "Internal Server Error" {
		t.Errorf("unexpected message %q", e.Message)
	}
}

func TestCreateComment(t *testing.T) {
	env := setupTest(t)
	env.knownUser("U1", 3)

	env.comments.EXPECT().
		CreateComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *comment.Comment) error {
			if c.ParentID != nil {
				t.Errorf("expected parent_id 0 to mean top level, got %d", *c.ParentID)
			}
			c.ID = 11
			c.CreatedAt = time.Now()
			c.UpdatedAt = c.CreatedAt
			return nil
		})

	rec := env.do(http.MethodPost, "/api/comments", `{"line_user_id":"U1","content":"hello","parent_id":0}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var view comment.CommentView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.ID != 11 || !view.IsOwner || view.IsLiked || view.IsEdited || view.LikeCount != 0 || view.DisplayName != "Taro" {
		t.Errorf("unexpected view %+v", view)
	}
}

func TestCreateComment_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(env *testEnv)
		wantCode int
	}{
		{
			name:     "content too long",
			body:     fmt.Sprintf(`{"line_user_id":"U1","content":%q}`, strings.Repeat("a", 101)),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty content",
			body:     `{"line_user_id":"U1","content":""}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown user",
			body:     `{"line_user_id":"ghost","content":"hi"}`,
			setup:    func(env *testEnv) { env.unknownUser("ghost") },
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "missing parent",
			body: `{"line_user_id":"U1","content":"hi","parent_id":999}`,
			setup: func(env *testEnv) {
				env.knownUser("U1", 3)
				env.comments.EXPECT().CreateComment(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: fk", repositories.ErrReferenceMissing))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTest(t)
			if tt.setup != nil {
				tt.setup(env)
			}
			rec := env.do(http.MethodPost, "/api/comments", tt.body, nil)
			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestUpdateComment(t *testing.T) {
	env := setupTest(t)
	env.knownUser("U1", 3)

	env.comments.EXPECT().UpdateOwnedContent(gomock.Any(), uint(5), uint(3), "edited").Return(true, nil)
	env.comments.EXPECT().GetCommentView(gomock.Any(), uint(5), gomock.Any()).
		Return(&comment.CommentView{ID: 5, Content: "edited", IsOwner: true, IsEdited: true}, nil)

	rec := env.do(http.MethodPut, "/api/comments/5", `{"line_user_id":"U1","content":"edited"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var view comment.CommentView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !view.IsEdited || view.Content != "edited" {
		t.Errorf("unexpected view %+v", view)
	}
}

func TestUpdateComment_NotOwner(t *testing.T) {
	env := setupTest(t)
	env.knownUser("U2", 4)
	env.comments.EXPECT().UpdateOwnedContent(gomock.Any(), uint(5), uint(4), "mine now").Return(false, nil)

	rec := env.do(http.MethodPut, "/api/comments/5", `{"line_user_id":"U2","content":"mine now"}`, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestDeleteComment(t *testing.T) {
	env := setupTest(t)
	env.knownUser("U1", 3)
	env.comments.EXPECT().DeleteOwned(gomock.Any(), uint(5), uint(3)).Return(true, nil)

	rec := env.do(http.MethodDelete, "/api/comments/5", "", map[string]string{LineUserHeader: "U1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Deleted" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestDeleteComment_NoHeader(t *testing.T) {
	env := setupTest(t)

	rec := env.do(http.MethodDelete, "/api/comments/5", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestInvalidCommentID(t *testing.T) {
	env := setupTest(t)

	for _, target := range []string{"/api/comments/abc/replies", "/api/comments/0/like", "/api/comments/-1", "/api/comments/18446744073709551615/replies", "/api/comments/9223372036854775808/like"} {
		method := http.MethodGet
		switch {
		case strings.HasSuffix(target, "/like"):
			method = http.MethodPost
		case strings.HasSuffix(target, "-1"):
			method = http.MethodDelete
		}
		rec := env.do(method, target, "", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s %s: expected 400, got %d", method, target, rec.Code)
		}
	}
}

func TestListReplies(t *testing.T) {
	env := setupTest(t)
	env.comments.EXPECT().CommentExists(gomock.Any(), uint(5)).Return(true, nil)
	env.comments.EXPECT().ListReplies(gomock.Any(), uint(5), nil, 10, 0).
		Return([]comment.CommentView{{ID: 6}, {ID: 7}}, nil)

	rec := env.do(http.MethodGet, "/api/comments/5/replies", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestListReplies_NoParent(t *testing.T) {
	env := setupTest(t)
	env.comments.EXPECT().CommentExists(gomock.Any(), uint(404)).Return(false, nil)

	rec := env.do(http.MethodGet, "/api/comments/404/replies", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if e := decodeError(t, rec); e.Message != "Parent comment not found" {
		t.Errorf("unexpected message %q", e.Message)
	}
}

func TestToggleLike(t *testing.T) {
	env := setupTest(t)
	env.knownUser("U1", 3)
	env.likes.EXPECT().ToggleLike(gomock.Any(), uint(5), uint(3)).Return(true, int64(4), nil)

	rec := env.do(http.MethodPost, "/api/comments/5/like", `{"line_user_id":"U1"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res likes.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.IsLiked || res.LikeCount != 4 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestToggleLike_MissingComment(t *testing.T) {
	env := setupTest(t)
	env.knownUser("U1", 3)
	env.likes.EXPECT().ToggleLike(gomock.Any(), uint(9), uint(3)).Return(false, int64(0), repositories.ErrNotFound)

	rec := env.do(http.MethodPost, "/api/comments/9/like", `{"line_user_id":"U1"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGameData(t *testing.T) {
	env := setupTest(t)
	env.gameCfg.EXPECT().GetConfig(gomock.Any()).Return(gameconfig.DefaultConfig(), nil)

	rec := env.do(http.MethodGet, "/api/game-data", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var data game.GameData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Config.MagicWord != "オモロー" || len(data.Sequence) != 42 {
		t.Errorf("unexpected data: config %+v, %d steps", data.Config, len(data.Sequence))
	}
	if !strings.Contains(rec.Body.String(), `"assets":{}`) {
		t.Errorf("expected non-aho steps to carry an empty assets object")
	}
}

func TestGameData_NotSeeded(t *testing.T) {
	env := setupTest(t)
	env.gameCfg.EXPECT().GetConfig(gomock.Any()).Return(nil, nil)

	rec := env.do(http.MethodGet, "/api/game-data", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateSettings(t *testing.T) {
	env := setupTest(t)
	env.gameCfg.EXPECT().SaveConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg *gameconfig.GameConfig) error {
			if cfg.StartNum != 1 || cfg.EndNum != 30 || cfg.SpecialNum != 5 {
				t.Errorf("unexpected numbers %+v", cfg)
			}
			if cfg.AhoImageURL != nil {
				t.Errorf("expected empty image to be NULL")
			}
			return nil
		})

	body := `{"start_num":"1","end_num":30,"special_num":"5","magic_word":"end","aho_text":"aho","aho_image_url":""}`
	rec := env.do(http.MethodPut, "/api/settings", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string                `json:"message"`
		Data    gameconfig.GameConfig `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Settings updated successfully" || resp.Data.SpecialNum != 5 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestUpdateSettings_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing special":  `{"start_num":1,"end_num":30}`,
		"empty string":     `{"start_num":"","end_num":30,"special_num":3}`,
		"start >= end":     `{"start_num":30,"end_num":30,"special_num":3}`,
		"zero special":     `{"start_num":1,"end_num":30,"special_num":0}`,
		"negative":         `{"start_num":1,"end_num":30,"special_num":-2}`,
		"not a number":     `{"start_num":"one","end_num":30,"special_num":3}`,
		"beyond int32":     `{"start_num":1,"end_num":99999999999,"special_num":3}`,
		"beyond int32 str": `{"start_num":"-99999999999","end_num":30,"special_num":3}`,
		"huge span":        `{"start_num":-2147483647,"end_num":2147483647,"special_num":3}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			env := setupTest(t)
			rec := env.do(http.MethodPut, "/api/settings", body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte(content))
	mw.Close()
	return buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	env := setupTest(t)
	body, ctype := multipartBody(t, "file", "aho.png", "png-bytes")

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Host = "game.example.com"
	req.Header.Set("Content-Type", ctype)
	req.Header.Set("X-Forwarded-Proto", "https, http")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp UploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	prefix := "https://game.example.com/uploads/"
	if !strings.HasPrefix(resp.URL, prefix) || !strings.HasSuffix(resp.URL, "-aho.png") {
		t.Fatalf("unexpected url %q", resp.URL)
	}

	name := strings.TrimPrefix(resp.URL, prefix)
	b, err := os.ReadFile(filepath.Join(env.uploadDir, name))
	if err != nil || string(b) != "png-bytes" {
		t.Fatalf("stored file: %q, %v", b, err)
	}

	// and it is served back
	rec = env.do(http.MethodGet, "/uploads/"+name, "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "png-bytes" {
		t.Errorf("expected stored file to be served, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestUpload_NoFile(t *testing.T) {
	env := setupTest(t)
	body, ctype := multipartBody(t, "other", "a.txt", "x")

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if e := decodeError(t, rec); e.Message != "No file uploaded." {
		t.Errorf("unexpected message %q", e.Message)
	}

	rec = env.do(http.MethodPost, "/api/upload", `{"file":"nope"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-multipart body, got %d", rec.Code)
	}
}

func TestUploads_NoDirectoryListing(t *testing.T) {
	env := setupTest(t)

	rec := env.do(http.MethodGet, "/uploads/", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	env := setupTest(t)

	rec := env.do(http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("expected 200 OK, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	env := setupTest(t)

	rec := env.do(http.MethodOptions, "/api/comments", "", map[string]string{
		"Origin":                         "https://liff.line.me",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "Content-Type, line_user_id",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow origin '*', got %q", got)
	}
}
