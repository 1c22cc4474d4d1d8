package message

import (
	"fmt"
	"strings"
	"testing"

	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/model"
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
	err = db.AutoMigrate(&model.PrivateMessage{}, &model.LoveChat{}, &model.LoveMessage{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db)
}

func TestConversationBothDirections(t *testing.T) {
	svc := NewMessageService(newTestRepos(t))

	_, err := svc.SendPrivate(request.PrivateMessageRequest{
		SenderId: "u1", ReceiverId: "u2", Content: "привет",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	_, err = svc.SendPrivate(request.PrivateMessageRequest{
		SenderId: "u2", ReceiverId: "u1", Content: "и тебе",
	})
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	// третий пользователь не попадает в переписку
	_, err = svc.SendPrivate(request.PrivateMessageRequest{
		SenderId: "u3", ReceiverId: "u1", Content: "мимо",
	})
	if err != nil {
		t.Fatalf("other: %v", err)
	}

	msgs, err := svc.Conversation("u1", "u2")
	if err != nil {
		t.Fatalf("conversation: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("conversation len = %d, want 2", len(msgs))
	}
	if msgs[0].Content != "привет" || msgs[1].Content != "и тебе" {
		t.Errorf("ordering wrong: %+v", msgs)
	}

	_, err = svc.Conversation("u1", "")
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("missing peer: code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}
}

func TestAnonymousFieldsSurvive(t *testing.T) {
	svc := NewMessageService(newTestRepos(t))

	msg, err := svc.SendPrivate(request.PrivateMessageRequest{
		SenderId:        "u1",
		ReceiverId:      "u2",
		Content:         "секрет",
		IsAnonymous:     true,
		AnonymousName:   "Аноним",
		AnonymousAvatar: "🎭",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !msg.IsAnonymous || msg.AnonymousName != "Аноним" || msg.AnonymousAvatar != "🎭" {
		t.Errorf("anonymous fields lost: %+v", msg)
	}
}

func TestLoveChatFlow(t *testing.T) {
	svc := NewMessageService(newTestRepos(t))

	_, err := svc.CreateLoveChat(request.CreateLoveChatRequest{User1Id: "u1", User2Id: "u1"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("same user chat: code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}

	chat, err := svc.CreateLoveChat(request.CreateLoveChatRequest{User1Id: "u1", User2Id: "u2"})
	if err != nil {
		t.Fatalf("create chat: %v", err)
	}

	_, err = svc.SendLoveMessage("missing", request.LoveMessageRequest{SenderId: "u1", Content: "…"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("missing chat: code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}

	if _, err := svc.SendLoveMessage(chat.Id, request.LoveMessageRequest{SenderId: "u1", Content: "первое"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.SendLoveMessage(chat.Id, request.LoveMessageRequest{SenderId: "u2", Content: "второе"}); err != nil {
		t.Fatalf("send: %v", err)
	}

	msgs, err := svc.LoveMessages(chat.Id)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Content != "первое" {
		t.Errorf("messages = %+v", msgs)
	}
}
