// Package community 提供社区的业务逻辑
// 创建、加入、搜索、社区消息，以及禁言管理
package community

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

type communityService struct {
	repos *repository.Repositories
}

// NewCommunityService 构造函数
func NewCommunityService(repos *repository.Repositories) *communityService {
	return &communityService{repos: repos}
}

// Create 创建社区
// 社区行与创建者的 admin 成员行在同一事务内写入
func (c *communityService) Create(req request.CreateCommunityRequest) (*respond.CommunityRespond, error) {
	if c.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	communityModel := model.Community{
		Id:          uuid.NewString(),
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		CreatedBy:   req.CreatedBy,
	}
	err := c.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Community.Create(&communityModel); err != nil {
			return err
		}
		admin := model.CommunityMember{
			Id:          uuid.NewString(),
			CommunityId: communityModel.Id,
			UserId:      req.CreatedBy,
			Role:        constants.ROLE_ADMIN,
		}
		return tx.Member.Create(&admin)
	})
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	return toCommunityRespond(&communityModel), nil
}

// Join 加入社区，成为普通成员
func (c *communityService) Join(communityId string, req request.JoinCommunityRequest) error {
	if c.repos == nil {
		return errorx.ErrServerBusy
	}

	if _, err := c.repos.Community.FindById(communityId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "Сообщество не найдено")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	member := model.CommunityMember{
		Id:          uuid.NewString(),
		CommunityId: communityId,
		UserId:      req.UserId,
		Role:        constants.ROLE_MEMBER,
	}
	if err := c.repos.Member.Create(&member); err != nil {
		if repository.IsDuplicate(err) {
			return errorx.New(errorx.CodeInvalidParam, "Вы уже участник этого сообщества")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// Search 搜索社区，按成员数降序
func (c *communityService) Search(query, communityType string) ([]respond.CommunitySearchRespond, error) {
	if c.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	rows, err := c.repos.Community.Search(query, communityType, constants.SEARCH_RESULT_CAP)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	result := make([]respond.CommunitySearchRespond, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		result = append(result, respond.CommunitySearchRespond{
			CommunityRespond: respond.CommunityRespond{
				Id:          row.Id,
				Name:        row.Name,
				Type:        row.Type,
				Description: row.Description,
				IsPrivate:   row.IsPrivate,
				CreatedBy:   row.CreatedBy,
				CreatedAt:   row.CreatedAt,
			},
			MembersCount: row.MembersCount,
		})
	}
	return result, nil
}

// Messages 取社区消息列表（升序，带作者展示字段）
func (c *communityService) Messages(communityId string) ([]respond.CommunityMessageRespond, error) {
	if c.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	rows, err := c.repos.Message.ListCommunityMessages(communityId, constants.MESSAGE_LIST_CAP)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	result := make([]respond.CommunityMessageRespond, 0, len(rows))
	for i := range rows {
		result = append(result, toCommunityMessageRespond(&rows[i]))
	}
	return result, nil
}

// SendMessage 发送社区消息
// 被禁言的成员拒绝发言；非成员不拦截（开放社区语义）
func (c *communityService) SendMessage(communityId string, req request.CommunityMessageRequest) (*respond.CommunityMessageRespond, error) {
	if c.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	member, err := c.repos.Member.Find(communityId, req.UserId)
	if err != nil && errorx.GetCode(err) != errorx.CodeNotFound {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if err == nil && member.IsMuted {
		return nil, errorx.New(errorx.CodeForbidden, "Вы заглушены в этом сообществе")
	}

	msg := model.CommunityMessage{
		Id:          uuid.NewString(),
		CommunityId: communityId,
		UserId:      req.UserId,
		Content:     req.Content,
	}
	if err := c.repos.Message.CreateCommunityMessage(&msg); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 回显作者字段：从用户表兜底取一次
	resp := respond.CommunityMessageRespond{
		Id:          msg.Id,
		CommunityId: msg.CommunityId,
		UserId:      msg.UserId,
		Content:     msg.Content,
		CreatedAt:   msg.CreatedAt,
	}
	if user, err := c.repos.User.FindById(req.UserId); err == nil {
		resp.Name = user.Name
		resp.Surname = user.Surname
		resp.AvatarUrl = user.AvatarUrl
	}
	return &resp, nil
}

// Mute 禁言成员
func (c *communityService) Mute(communityId string, req request.MuteMemberRequest) error {
	if c.repos == nil {
		return errorx.ErrServerBusy
	}
	if err := c.checkModerator(communityId, req.AdminId); err != nil {
		return err
	}
	if err := c.checkMemberExists(communityId, req.UserId); err != nil {
		return err
	}

	if err := c.repos.Member.SetMute(communityId, req.UserId, true, req.Reason, req.AdminId); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// Unmute 解除禁言
func (c *communityService) Unmute(communityId string, req request.UnmuteMemberRequest) error {
	if c.repos == nil {
		return errorx.ErrServerBusy
	}
	if err := c.checkModerator(communityId, req.AdminId); err != nil {
		return err
	}
	if err := c.checkMemberExists(communityId, req.UserId); err != nil {
		return err
	}

	if err := c.repos.Member.SetMute(communityId, req.UserId, false, "", ""); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// checkModerator 校验操作者是 admin 或 moderator 成员
func (c *communityService) checkModerator(communityId, userId string) error {
	member, err := c.repos.Member.Find(communityId, userId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeForbidden, "Недостаточно прав")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if member.Role != constants.ROLE_ADMIN && member.Role != constants.ROLE_MODERATOR {
		return errorx.New(errorx.CodeForbidden, "Недостаточно прав")
	}
	return nil
}

// checkMemberExists 校验目标成员存在
func (c *communityService) checkMemberExists(communityId, userId string) error {
	if _, err := c.repos.Member.Find(communityId, userId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "Участник не найден")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

func toCommunityRespond(m *model.Community) *respond.CommunityRespond {
	return &respond.CommunityRespond{
		Id:          m.Id,
		Name:        m.Name,
		Type:        m.Type,
		Description: m.Description,
		IsPrivate:   m.IsPrivate,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func toCommunityMessageRespond(row *repository.CommunityMessageRow) respond.CommunityMessageRespond {
	return respond.CommunityMessageRespond{
		Id:          row.Id,
		CommunityId: row.CommunityId,
		UserId:      row.UserId,
		Content:     row.Content,
		CreatedAt:   row.CreatedAt,
		Name:        row.Name,
		Surname:     row.Surname,
		AvatarUrl:   row.AvatarUrl,
	}
}
