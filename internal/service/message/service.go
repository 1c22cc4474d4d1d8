// Package message 提供私信与 LOVE 聊天的业务逻辑
package message

import (
	"go.uber.org/zap"

	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/dto/respond"
	"coolpep_server/internal/model"
	"coolpep_server/pkg/constants"
	"coolpep_server/pkg/errorx"

	"github.com/google/uuid"
)

type messageService struct {
	repos *repository.Repositories
}

// NewMessageService 构造函数
func NewMessageService(repos *repository.Repositories) *messageService {
	return &messageService{repos: repos}
}

// SendPrivate 发送私信
// 匿名消息带临时昵称/头像，真实发送者照常落库
func (m *messageService) SendPrivate(req request.PrivateMessageRequest) (*respond.PrivateMessageRespond, error) {
	if m.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	msg := model.PrivateMessage{
		Id:              uuid.NewString(),
		SenderId:        req.SenderId,
		ReceiverId:      req.ReceiverId,
		Content:         req.Content,
		IsAnonymous:     req.IsAnonymous,
		AnonymousAvatar: req.AnonymousAvatar,
		AnonymousName:   req.AnonymousName,
	}
	if err := m.repos.Message.CreatePrivateMessage(&msg); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return toPrivateRespond(&msg), nil
}

// Conversation 取两个用户之间的双向私信（升序）
func (m *messageService) Conversation(userId, peerId string) ([]respond.PrivateMessageRespond, error) {
	if userId == "" || peerId == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "Нужны оба идентификатора пользователей")
	}
	if m.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	msgs, err := m.repos.Message.ListConversation(userId, peerId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	result := make([]respond.PrivateMessageRespond, 0, len(msgs))
	for i := range msgs {
		result = append(result, *toPrivateRespond(&msgs[i]))
	}
	return result, nil
}

// CreateLoveChat 创建双人 LOVE 聊天
func (m *messageService) CreateLoveChat(req request.CreateLoveChatRequest) (*respond.LoveChatRespond, error) {
	if req.User1Id == req.User2Id {
		return nil, errorx.New(errorx.CodeInvalidParam, "Нужны два разных пользователя")
	}
	if m.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	chat := model.LoveChat{
		Id:      uuid.NewString(),
		User1Id: req.User1Id,
		User2Id: req.User2Id,
	}
	if err := m.repos.Love.CreateChat(&chat); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return &respond.LoveChatRespond{
		Id:        chat.Id,
		User1Id:   chat.User1Id,
		User2Id:   chat.User2Id,
		CreatedAt: chat.CreatedAt,
	}, nil
}

// SendLoveMessage 在聊天内发消息
func (m *messageService) SendLoveMessage(chatId string, req request.LoveMessageRequest) (*respond.LoveMessageRespond, error) {
	if m.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	if _, err := m.repos.Love.FindChat(chatId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "Чат не найден")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	msg := model.LoveMessage{
		Id:         uuid.NewString(),
		LoveChatId: chatId,
		SenderId:   req.SenderId,
		Content:    req.Content,
	}
	if err := m.repos.Love.CreateMessage(&msg); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return toLoveMessageRespond(&msg), nil
}

// LoveMessages 取聊天消息列表（升序）
func (m *messageService) LoveMessages(chatId string) ([]respond.LoveMessageRespond, error) {
	if m.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	if _, err := m.repos.Love.FindChat(chatId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "Чат не найден")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	msgs, err := m.repos.Love.ListMessages(chatId, constants.MESSAGE_LIST_CAP)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	result := make([]respond.LoveMessageRespond, 0, len(msgs))
	for i := range msgs {
		result = append(result, *toLoveMessageRespond(&msgs[i]))
	}
	return result, nil
}

func toPrivateRespond(msg *model.PrivateMessage) *respond.PrivateMessageRespond {
	return &respond.PrivateMessageRespond{
		Id:              msg.Id,
		SenderId:        msg.SenderId,
		ReceiverId:      msg.ReceiverId,
		Content:         msg.Content,
		IsAnonymous:     msg.IsAnonymous,
		AnonymousAvatar: msg.AnonymousAvatar,
		AnonymousName:   msg.AnonymousName,
		CreatedAt:       msg.CreatedAt,
	}
}

func toLoveMessageRespond(msg *model.LoveMessage) *respond.LoveMessageRespond {
	return &respond.LoveMessageRespond{
		Id:         msg.Id,
		LoveChatId: msg.LoveChatId,
		SenderId:   msg.SenderId,
		Content:    msg.Content,
		CreatedAt:  msg.CreatedAt,
	}
}
