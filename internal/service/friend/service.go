// Package friend 提供用户搜索与好友请求的业务逻辑
package friend

import (
	"strings"

	"go.uber.org/zap"

	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/dto/respond"
	"coolpep_server/internal/model"
	"coolpep_server/pkg/constants"
	"coolpep_server/pkg/errorx"

	"github.com/google/uuid"
)

type friendService struct {
	repos *repository.Repositories
}

// NewFriendService 构造函数
func NewFriendService(repos *repository.Repositories) *friendService {
	return &friendService{repos: repos}
}

// Search 按名字子串搜索用户
func (f *friendService) Search(query string) ([]respond.UserRespond, error) {
	if f.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	users, err := f.repos.User.SearchByName(strings.TrimSpace(query), constants.SEARCH_RESULT_CAP)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	result := make([]respond.UserRespond, 0, len(users))
	for i := range users {
		u := &users[i]
		result = append(result, respond.UserRespond{
			Id:        u.Id,
			Phone:     u.Phone,
			Name:      u.Name,
			Surname:   u.Surname,
			Bio:       u.Bio,
			Gender:    u.Gender,
			AvatarUrl: u.AvatarUrl,
		})
	}
	return result, nil
}

// SendRequest 发送好友请求，(user_id, friend_id) 重复时报错
func (f *friendService) SendRequest(req request.FriendRequestRequest) error {
	if req.UserId == req.FriendId {
		return errorx.New(errorx.CodeInvalidParam, "Нельзя добавить себя в друзья")
	}
	if f.repos == nil {
		return errorx.ErrServerBusy
	}

	edge := model.Friend{
		Id:       uuid.NewString(),
		UserId:   req.UserId,
		FriendId: req.FriendId,
		Status:   constants.FRIEND_STATUS_PENDING,
	}
	if err := f.repos.Friend.CreateRequest(&edge); err != nil {
		if repository.IsDuplicate(err) {
			return errorx.New(errorx.CodeInvalidParam, "Запрос уже отправлен")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}
