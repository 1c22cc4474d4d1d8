// Package feed 提供动态帖子的业务逻辑
package feed

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

type feedService struct {
	repos *repository.Repositories
}

// NewFeedService 构造函数
func NewFeedService(repos *repository.Repositories) *feedService {
	return &feedService{repos: repos}
}

// CreatePost 发布帖子
func (f *feedService) CreatePost(req request.CreatePostRequest) (*respond.PostRespond, error) {
	if f.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	post := model.Post{
		Id:          uuid.NewString(),
		UserId:      req.UserId,
		Content:     req.Content,
		CommunityId: req.CommunityId,
	}
	if err := f.repos.Post.Create(&post); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	resp := respond.PostRespond{
		Id:          post.Id,
		UserId:      post.UserId,
		Content:     post.Content,
		CommunityId: post.CommunityId,
		CreatedAt:   post.CreatedAt,
	}
	if user, err := f.repos.User.FindById(req.UserId); err == nil {
		resp.Name = user.Name
		resp.Surname = user.Surname
		resp.AvatarUrl = user.AvatarUrl
	}
	return &resp, nil
}

// ListPosts 取最新帖子
func (f *feedService) ListPosts() ([]respond.PostRespond, error) {
	if f.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	rows, err := f.repos.Post.ListFeed(constants.POST_FEED_CAP)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	result := make([]respond.PostRespond, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		result = append(result, respond.PostRespond{
			Id:            row.Id,
			UserId:        row.UserId,
			Content:       row.Content,
			CommunityId:   row.CommunityId,
			CreatedAt:     row.CreatedAt,
			Name:          row.Name,
			Surname:       row.Surname,
			AvatarUrl:     row.AvatarUrl,
			CommunityName: row.CommunityName,
		})
	}
	return result, nil
}
