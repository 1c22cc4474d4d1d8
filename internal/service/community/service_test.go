package community

import (
	"fmt"
	"strings"
	"testing"

	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/model"
	"coolpep_server/pkg/constants"
	"coolpep_server/pkg/errorx"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
	err = db.AutoMigrate(&model.User{}, &model.Community{}, &model.CommunityMember{}, &model.CommunityMessage{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db)
}

const (
	adminId  = "10000000-0000-0000-0000-000000000001"
	memberId = "20000000-0000-0000-0000-000000000002"
)

func createCommunity(t *testing.T, svc *communityService) string {
	t.Helper()
	resp, err := svc.Create(request.CreateCommunityRequest{
		Name:      "Путешествия",
		Type:      "travel",
		CreatedBy: adminId,
	})
	if err != nil {
		t.Fatalf("create community: %v", err)
	}
	return resp.Id
}

func TestCreateMakesAdminMember(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommunityService(repos)
	id := createCommunity(t, svc)

	member, err := repos.Member.Find(id, adminId)
	if err != nil {
		t.Fatalf("creator member row missing: %v", err)
	}
	if member.Role != constants.ROLE_ADMIN {
		t.Errorf("creator role = %q, want admin", member.Role)
	}
}

func TestJoin(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommunityService(repos)
	id := createCommunity(t, svc)

	if err := svc.Join(id, request.JoinCommunityRequest{UserId: memberId}); err != nil {
		t.Fatalf("join: %v", err)
	}

	err := svc.Join(id, request.JoinCommunityRequest{UserId: memberId})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("double join: code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}

	err = svc.Join("missing", request.JoinCommunityRequest{UserId: memberId})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("missing community: code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestMuteContract(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommunityService(repos)
	id := createCommunity(t, svc)

	if err := svc.Join(id, request.JoinCommunityRequest{UserId: memberId}); err != nil {
		t.Fatalf("join: %v", err)
	}

	// 普通成员不能禁言别人
	err := svc.Mute(id, request.MuteMemberRequest{UserId: adminId, AdminId: memberId})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("member mute: code = %d, want %d", errorx.GetCode(err), errorx.CodeForbidden)
	}

	// 管理员禁言成员
	err = svc.Mute(id, request.MuteMemberRequest{UserId: memberId, AdminId: adminId, Reason: "спам"})
	if err != nil {
		t.Fatalf("admin mute: %v", err)
	}

	// 被禁言的成员发不了消息
	_, err = svc.SendMessage(id, request.CommunityMessageRequest{UserId: memberId, Content: "привет"})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("muted send: code = %d, want %d", errorx.GetCode(err), errorx.CodeForbidden)
	}

	// 解除之后恢复发言
	if err := svc.Unmute(id, request.UnmuteMemberRequest{UserId: memberId, AdminId: adminId}); err != nil {
		t.Fatalf("unmute: %v", err)
	}
	if _, err := svc.SendMessage(id, request.CommunityMessageRequest{UserId: memberId, Content: "привет"}); err != nil {
		t.Fatalf("send after unmute: %v", err)
	}

	member, err := repos.Member.Find(id, memberId)
	if err != nil {
		t.Fatalf("find member: %v", err)
	}
	if member.IsMuted || member.MuteReason != "" || member.MutedBy != "" {
		t.Errorf("unmute must clear state, got %+v", member)
	}

	// 禁言不存在的成员
	err = svc.Mute(id, request.MuteMemberRequest{UserId: "ghost", AdminId: adminId})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("mute missing member: code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestSearchOrdersByMembers(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommunityService(repos)

	small, err := svc.Create(request.CreateCommunityRequest{Name: "Travel small", Type: "travel", CreatedBy: adminId})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	big, err := svc.Create(request.CreateCommunityRequest{Name: "Travel big", Type: "travel", CreatedBy: adminId})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 3; i++ {
		userId := fmt.Sprintf("30000000-0000-0000-0000-00000000000%d", i)
		if err := svc.Join(big.Id, request.JoinCommunityRequest{UserId: userId}); err != nil {
			t.Fatalf("join: %v", err)
		}
	}

	rows, err := svc.Search("travel", "all")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("search len = %d, want 2", len(rows))
	}
	if rows[0].Id != big.Id || rows[0].MembersCount != 4 {
		t.Errorf("first result = %s (%d members), want %s (4)", rows[0].Id, rows[0].MembersCount, big.Id)
	}
	if rows[1].Id != small.Id || rows[1].MembersCount != 1 {
		t.Errorf("second result = %s (%d members), want %s (1)", rows[1].Id, rows[1].MembersCount, small.Id)
	}

	// 类型过滤
	none, err := svc.Search("travel", "sport")
	if err != nil {
		t.Fatalf("search type filter: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("type filter len = %d, want 0", len(none))
	}
}
