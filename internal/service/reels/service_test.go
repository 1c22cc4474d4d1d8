package reels

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/model"
	"coolpep_server/pkg/errorx"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepos 每个测试一个独立的内存库
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(&model.User{}, &model.Reel{}, &model.ReelLike{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db)
}

func createUser(t *testing.T, repos *repository.Repositories, id, name string) {
	t.Helper()
	err := repos.User.Create(&model.User{Id: id, Phone: "+7999" + id[:7], Name: name})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func uploadReel(t *testing.T, svc *reelsService, userId, caption string) string {
	t.Helper()
	resp, err := svc.Upload(request.UploadReelRequest{
		UserId:  userId,
		Video:   "AAAA",
		Caption: caption,
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	return resp.Id
}

func TestUploadDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReelsService(repos)
	createUser(t, repos, "10000000-0000-0000-0000-000000000001", "Иван")

	resp, err := svc.Upload(request.UploadReelRequest{
		UserId: "10000000-0000-0000-0000-000000000001",
		Video:  "AAAA",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if resp.MimeType != "video/mp4" {
		t.Errorf("mime = %q, want video/mp4", resp.MimeType)
	}
	if resp.Duration != 15 {
		t.Errorf("duration = %d, want 15", resp.Duration)
	}
	if resp.LikesCount != 0 || resp.IsLiked {
		t.Errorf("fresh reel must start unliked, got likes=%d is_liked=%v", resp.LikesCount, resp.IsLiked)
	}
	if resp.UserName != "Иван" {
		t.Errorf("user_name = %q, want Иван", resp.UserName)
	}
}

func TestUploadRejections(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReelsService(repos)

	_, err := svc.Upload(request.UploadReelRequest{UserId: "u1", Video: "AAAA", FileSize: 11 * 1024 * 1024})
	if errorx.GetCode(err) != errorx.CodePayloadTooLarge {
		t.Errorf("oversize: code = %d, want %d", errorx.GetCode(err), errorx.CodePayloadTooLarge)
	}

	_, err = svc.Upload(request.UploadReelRequest{UserId: "u1", Video: "AAAA", MimeType: "image/png"})
	if errorx.GetCode(err) != errorx.CodeInvalidFormat {
		t.Errorf("bad mime: code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidFormat)
	}

	_, err = svc.Upload(request.UploadReelRequest{UserId: "", Video: ""})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("missing fields: code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}
}

func TestFeedOrderingAndPagination(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReelsService(repos)
	createUser(t, repos, "10000000-0000-0000-0000-000000000001", "Иван")

	// 先上传的更旧，时间差要大于秒级精度
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		reel := model.Reel{
			Id:            fmt.Sprintf("r%d", i),
			UserId:        "10000000-0000-0000-0000-000000000001",
			VideoData:     "AAAA",
			VideoFilename: "v.mp4",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := repos.Reel.Create(&reel); err != nil {
			t.Fatalf("create reel: %v", err)
		}
	}

	page1, err := svc.Feed(1, 3, "")
	if err != nil {
		t.Fatalf("feed page1: %v", err)
	}
	if len(page1.Reels) != 3 {
		t.Fatalf("page1 len = %d, want 3", len(page1.Reels))
	}
	if page1.Reels[0].Id != "r4" || page1.Reels[2].Id != "r2" {
		t.Errorf("page1 order = %s..%s, want r4..r2", page1.Reels[0].Id, page1.Reels[2].Id)
	}
	if page1.Pagination.Total != 5 {
		t.Errorf("total = %d, want 5", page1.Pagination.Total)
	}

	page2, err := svc.Feed(2, 3, "")
	if err != nil {
		t.Fatalf("feed page2: %v", err)
	}
	if len(page2.Reels) != 2 {
		t.Fatalf("page2 len = %d, want 2", len(page2.Reels))
	}
	for _, r1 := range page1.Reels {
		for _, r2 := range page2.Reels {
			if r1.Id == r2.Id {
				t.Errorf("reel %s appears on both pages", r1.Id)
			}
		}
	}

	// 越界页给空列表而不是错误
	page9, err := svc.Feed(9, 3, "")
	if err != nil {
		t.Fatalf("feed page9: %v", err)
	}
	if len(page9.Reels) != 0 {
		t.Errorf("out-of-range page len = %d, want 0", len(page9.Reels))
	}
}

func TestFeedCountsView(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReelsService(repos)
	createUser(t, repos, "10000000-0000-0000-0000-000000000001", "Иван")
	id := uploadReel(t, svc, "10000000-0000-0000-0000-000000000001", "тест")

	feed, err := svc.Feed(1, 10, "")
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if feed.Reels[0].ViewsCount != 1 {
		t.Errorf("views after one feed read = %d, want 1", feed.Reels[0].ViewsCount)
	}

	reel, err := repos.Reel.FindById(id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if reel.ViewsCount != 1 {
		t.Errorf("stored views = %d, want 1", reel.ViewsCount)
	}
}

func TestToggleLike(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReelsService(repos)
	createUser(t, repos, "10000000-0000-0000-0000-000000000001", "Иван")
	id := uploadReel(t, svc, "10000000-0000-0000-0000-000000000001", "тест")

	like := request.ToggleLikeRequest{UserId: "20000000-0000-0000-0000-000000000002"}

	first, err := svc.ToggleLike(id, like)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.IsLiked || first.LikesCount != 1 {
		t.Errorf("first toggle = {%d %v}, want {1 true}", first.LikesCount, first.IsLiked)
	}

	second, err := svc.ToggleLike(id, like)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.IsLiked || second.LikesCount != 0 {
		t.Errorf("second toggle = {%d %v}, want {0 false}", second.LikesCount, second.IsLiked)
	}

	// 缓存列与点赞表保持一致
	reel, err := repos.Reel.FindById(id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if reel.LikesCount != 0 {
		t.Errorf("cached likes_count = %d, want 0", reel.LikesCount)
	}

	_, err = svc.ToggleLike("missing", like)
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("missing reel: code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestIsLikedPerCaller(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReelsService(repos)
	createUser(t, repos, "10000000-0000-0000-0000-000000000001", "Иван")
	id := uploadReel(t, svc, "10000000-0000-0000-0000-000000000001", "тест")

	liker := "20000000-0000-0000-0000-000000000002"
	if _, err := svc.ToggleLike(id, request.ToggleLikeRequest{UserId: liker}); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	asLiker, err := svc.GetById(id, liker)
	if err != nil {
		t.Fatalf("get as liker: %v", err)
	}
	if !asLiker.IsLiked {
		t.Error("liker must see is_liked=true")
	}

	asGuest, err := svc.GetById(id, "")
	if err != nil {
		t.Fatalf("get as guest: %v", err)
	}
	if asGuest.IsLiked {
		t.Error("guest must see is_liked=false")
	}
}

func TestSearch(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReelsService(repos)
	// sqlite 的 LOWER 只折叠 ASCII，测试素材用拉丁字符
	createUser(t, repos, "10000000-0000-0000-0000-000000000001", "Ivan")
	uploadReel(t, svc, "10000000-0000-0000-0000-000000000001", "Mountain trip")
	uploadReel(t, svc, "10000000-0000-0000-0000-000000000001", "Morning Coffee")

	_, err := svc.Search("m", "")
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("short query: code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}

	found, err := svc.Search("coffee", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].Caption != "Morning Coffee" {
		t.Errorf("search result = %+v, want single Morning Coffee", found)
	}

	// 作者名同样可搜
	byAuthor, err := svc.Search("ivan", "")
	if err != nil {
		t.Fatalf("search by author: %v", err)
	}
	if len(byAuthor) != 2 {
		t.Errorf("author search len = %d, want 2", len(byAuthor))
	}
}

func TestDemoFallback(t *testing.T) {
	svc := NewReelsService(nil)

	feed, err := svc.Feed(1, 10, "")
	if err != nil {
		t.Fatalf("degraded feed must not fail: %v", err)
	}
	if len(feed.Reels) != 4 || feed.Pagination.Total != 4 {
		t.Fatalf("demo feed = %d reels total %d, want 4/4", len(feed.Reels), feed.Pagination.Total)
	}
	for _, r := range feed.Reels {
		if !strings.HasPrefix(r.Id, "demo-") {
			t.Errorf("demo reel id %q lacks demo- prefix", r.Id)
		}
	}

	reel, err := svc.GetById("demo-1", "")
	if err != nil {
		t.Fatalf("demo get: %v", err)
	}
	if reel.Caption == "" {
		t.Error("demo reel must carry caption")
	}

	video, err := svc.GetVideo("demo-1")
	if err != nil {
		t.Fatalf("demo video: %v", err)
	}
	if !strings.HasPrefix(video.Video, "https://") {
		t.Errorf("demo video must be a remote url, got %q", video.Video)
	}

	toggled, err := svc.ToggleLike("demo-2", request.ToggleLikeRequest{UserId: "u1"})
	if err != nil {
		t.Fatalf("demo like: %v", err)
	}
	if !toggled.IsLiked {
		t.Error("demo like must report is_liked=true")
	}

	if _, err := svc.GetById("demo-99", ""); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("unknown demo id: code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}
