package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/dto/respond"
	"coolpep_server/internal/handler"
	"coolpep_server/internal/router"
	"coolpep_server/internal/service"
	"coolpep_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// stub 服务：handler 层测试只关心信封和状态码映射

type stubAuthService struct{}

func (s stubAuthService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if req.Phone == "+70000000000" {
		return nil, errorx.New(errorx.CodeUserExist, "Пользователь уже существует")
	}
	return &respond.RegisterRespond{UserId: "u-test", VerificationCode: "1234", Message: "ok"}, nil
}
func (s stubAuthService) Verify(req request.VerifyRequest) (*respond.UserRespond, error) {
	return &respond.UserRespond{Id: req.UserId}, nil
}
func (s stubAuthService) GetUser(id string) (*respond.UserRespond, error) {
	if id == "missing" {
		return nil, errorx.New(errorx.CodeNotFound, "Пользователь не найден")
	}
	return &respond.UserRespond{Id: id}, nil
}
func (s stubAuthService) UpdateAvatar(id string, req request.UpdateAvatarRequest) (*respond.UserRespond, error) {
	return &respond.UserRespond{Id: id, AvatarUrl: req.AvatarUrl}, nil
}

type stubReelsService struct{}

func (s stubReelsService) Upload(req request.UploadReelRequest) (*respond.ReelRespond, error) {
	return &respond.ReelRespond{Id: "r-test"}, nil
}
func (s stubReelsService) Feed(page, limit int, callerUserId string) (*respond.FeedRespond, error) {
	return &respond.FeedRespond{
		Reels:      []respond.ReelRespond{{Id: "r-test"}},
		Pagination: respond.Pagination{Page: 1, Limit: 10, Total: 1},
	}, nil
}
func (s stubReelsService) GetById(id, callerUserId string) (*respond.ReelRespond, error) {
	return &respond.ReelRespond{Id: id}, nil
}
func (s stubReelsService) GetVideo(id string) (*respond.VideoRespond, error) {
	return &respond.VideoRespond{Video: "AAAA", MimeType: "video/mp4", Filename: "v.mp4"}, nil
}
func (s stubReelsService) ToggleLike(reelId string, req request.ToggleLikeRequest) (*respond.ToggleLikeRespond, error) {
	return &respond.ToggleLikeRespond{LikesCount: 1, IsLiked: true}, nil
}
func (s stubReelsService) Search(query, callerUserId string) ([]respond.ReelRespond, error) {
	if len(query) < 2 {
		return nil, errorx.New(errorx.CodeInvalidParam, "Запрос должен содержать минимум 2 символа")
	}
	return []respond.ReelRespond{}, nil
}

type stubFriendService struct{}

func (s stubFriendService) Search(query string) ([]respond.UserRespond, error) {
	return []respond.UserRespond{}, nil
}
func (s stubFriendService) SendRequest(req request.FriendRequestRequest) error { return nil }

type stubCommunityService struct{}

func (s stubCommunityService) Create(req request.CreateCommunityRequest) (*respond.CommunityRespond, error) {
	return &respond.CommunityRespond{Id: "c-test", Name: req.Name}, nil
}
func (s stubCommunityService) Join(communityId string, req request.JoinCommunityRequest) error {
	return nil
}
func (s stubCommunityService) Search(query, communityType string) ([]respond.CommunitySearchRespond, error) {
	return []respond.CommunitySearchRespond{}, nil
}
func (s stubCommunityService) Messages(communityId string) ([]respond.CommunityMessageRespond, error) {
	return []respond.CommunityMessageRespond{}, nil
}
func (s stubCommunityService) SendMessage(communityId string, req request.CommunityMessageRequest) (*respond.CommunityMessageRespond, error) {
	if req.UserId == "muted" {
		return nil, errorx.New(errorx.CodeForbidden, "Вы заглушены в этом сообществе")
	}
	return &respond.CommunityMessageRespond{Id: "m-test", Content: req.Content}, nil
}
func (s stubCommunityService) Mute(communityId string, req request.MuteMemberRequest) error {
	return nil
}
func (s stubCommunityService) Unmute(communityId string, req request.UnmuteMemberRequest) error {
	return nil
}

type stubFeedService struct{}

func (s stubFeedService) CreatePost(req request.CreatePostRequest) (*respond.PostRespond, error) {
	return &respond.PostRespond{Id: "p-test"}, nil
}
func (s stubFeedService) ListPosts() ([]respond.PostRespond, error) {
	return []respond.PostRespond{}, nil
}

type stubMessageService struct{}

func (s stubMessageService) SendPrivate(req request.PrivateMessageRequest) (*respond.PrivateMessageRespond, error) {
	return &respond.PrivateMessageRespond{Id: "pm-test"}, nil
}
func (s stubMessageService) Conversation(userId, peerId string) ([]respond.PrivateMessageRespond, error) {
	return []respond.PrivateMessageRespond{}, nil
}
func (s stubMessageService) CreateLoveChat(req request.CreateLoveChatRequest) (*respond.LoveChatRespond, error) {
	return &respond.LoveChatRespond{Id: "lc-test"}, nil
}
func (s stubMessageService) SendLoveMessage(chatId string, req request.LoveMessageRequest) (*respond.LoveMessageRespond, error) {
	return &respond.LoveMessageRespond{Id: "lm-test"}, nil
}
func (s stubMessageService) LoveMessages(chatId string) ([]respond.LoveMessageRespond, error) {
	return []respond.LoveMessageRespond{}, nil
}

type stubHealthService struct{}

func (s stubHealthService) Check() *respond.HealthRespond {
	return &respond.HealthRespond{Status: "OK", Database: "Connected", ReelsCount: 1, UsersCount: 1}
}

func newTestEngine() *gin.Engine {
	engine := gin.New()
	handlers := handler.NewHandlers(&service.Services{
		Auth:      stubAuthService{},
		Reels:     stubReelsService{},
		Friend:    stubFriendService{},
		Community: stubCommunityService{},
		Feed:      stubFeedService{},
		Message:   stubMessageService{},
		Health:    stubHealthService{},
	})
	router.RegisterRoutes(engine, handlers)
	return engine
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := handler.InitTrans("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func TestRegisterEnvelope(t *testing.T) {
	engine := newTestEngine()

	w, body := doJSON(t, engine, http.MethodPost, "/api/auth/register",
		gin.H{"phone": "+79991234567", "name": "Иван"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["userId"] != "u-test" {
		t.Errorf("userId = %v", body["userId"])
	}
}

func TestRegisterDuplicateMapsTo400(t *testing.T) {
	engine := newTestEngine()

	w, body := doJSON(t, engine, http.MethodPost, "/api/auth/register",
		gin.H{"phone": "+70000000000", "name": "Иван"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["error"] != "Пользователь уже существует" {
		t.Errorf("error = %v", body["error"])
	}
	if _, ok := body["success"]; ok {
		t.Error("failure envelope must not carry success field")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	engine := newTestEngine()

	w, body := doJSON(t, engine, http.MethodPost, "/api/auth/register", gin.H{"phone": "+79991234567"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["error"] == nil || body["error"] == "" {
		t.Error("validation failure must produce an error message")
	}
}

func TestNotFoundMapsTo404(t *testing.T) {
	engine := newTestEngine()

	w, body := doJSON(t, engine, http.MethodGet, "/api/user/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["error"] != "Пользователь не найден" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestMutedMemberMapsTo403(t *testing.T) {
	engine := newTestEngine()

	w, _ := doJSON(t, engine, http.MethodPost, "/api/communities/c1/messages",
		gin.H{"userId": "muted", "content": "привет"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestFeedEnvelope(t *testing.T) {
	engine := newTestEngine()

	w, body := doJSON(t, engine, http.MethodGet, "/api/reels/feed?page=1&limit=10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	pagination, ok := body["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("pagination missing: %v", body)
	}
	if pagination["total"] != float64(1) {
		t.Errorf("total = %v, want 1", pagination["total"])
	}
}

func TestHealthShape(t *testing.T) {
	engine := newTestEngine()

	w, body := doJSON(t, engine, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "OK" || body["database"] != "Connected" {
		t.Errorf("health = %v", body)
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	engine := newTestEngine()

	w, body := doJSON(t, engine, http.MethodGet, "/api/unknown/route", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	errMsg, _ := body["error"].(string)
	if !strings.Contains(errMsg, "/api/unknown/route") {
		t.Errorf("error must name the path, got %q", errMsg)
	}
}

func TestLandingPage(t *testing.T) {
	engine := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("content-type = %q, want html", w.Header().Get("Content-Type"))
	}
}
