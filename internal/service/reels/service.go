// Package reels 提供短视频的业务逻辑
// 视频内容以 base64 内联存储；feed 读路径在存储不可用时降级为内置演示数据
package reels

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"coolpep_server/internal/config"
	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/dto/respond"
	"coolpep_server/internal/model"
	"coolpep_server/pkg/constants"
	"coolpep_server/pkg/errorx"

	"github.com/google/uuid"
)

// reelsService 短视频业务逻辑实现
type reelsService struct {
	repos *repository.Repositories

	maxVideoSize    int64
	defaultDuration int
	defaultLimit    int
}

// NewReelsService 构造函数，上限参数取自配置，零值落到默认常量
func NewReelsService(repos *repository.Repositories) *reelsService {
	s := &reelsService{
		repos:           repos,
		maxVideoSize:    constants.MAX_VIDEO_SIZE,
		defaultDuration: constants.DEFAULT_REEL_DURATION,
		defaultLimit:    constants.DEFAULT_FEED_LIMIT,
	}
	conf := config.GetConfig()
	if conf.ReelsConfig.MaxVideoSize > 0 {
		s.maxVideoSize = conf.ReelsConfig.MaxVideoSize
	}
	if conf.ReelsConfig.DefaultDuration > 0 {
		s.defaultDuration = conf.ReelsConfig.DefaultDuration
	}
	if conf.ReelsConfig.DefaultLimit > 0 {
		s.defaultLimit = conf.ReelsConfig.DefaultLimit
	}
	return s
}

// Upload 校验并保存内联视频
// 丢列错误（手工改库之后的典型症状）触发一次表重建并重试
func (s *reelsService) Upload(req request.UploadReelRequest) (*respond.ReelRespond, error) {
	if req.UserId == "" || req.Video == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "ID пользователя и видео обязательны")
	}
	if s.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	// 客户端没报原始大小时按 base64 长度估算
	size := req.FileSize
	if size <= 0 {
		size = int64(len(req.Video)) * 3 / 4
	}
	if size > s.maxVideoSize {
		return nil, errorx.New(errorx.CodePayloadTooLarge, "Видео слишком большое (максимум 10MB)")
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	if !strings.HasPrefix(mimeType, "video/") {
		return nil, errorx.New(errorx.CodeInvalidFormat, "Только видео файлы разрешены")
	}

	reel := model.Reel{
		Id:            uuid.NewString(),
		UserId:        req.UserId,
		VideoData:     req.Video,
		VideoFilename: req.Filename,
		FileSize:      size,
		MimeType:      mimeType,
		Caption:       req.Caption,
		Music:         req.Music,
		Duration:      req.Duration,
	}
	if reel.VideoFilename == "" {
		reel.VideoFilename = fmt.Sprintf("reel-%s.mp4", reel.Id[:8])
	}
	if reel.Duration <= 0 {
		reel.Duration = s.defaultDuration
	}

	if err := s.repos.Reel.Create(&reel); err != nil {
		if repository.IsMissingColumn(err) {
			zap.L().Warn("reel tables out of shape, rebuilding", zap.Error(err))
			if recoverErr := s.repos.RecoverReelTables(); recoverErr != nil {
				zap.L().Error(recoverErr.Error())
				return nil, errorx.ErrServerBusy
			}
			err = s.repos.Reel.Create(&reel)
		}
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
	}

	row, err := s.repos.Reel.FindRowById(reel.Id, constants.EMPTY_CALLER_ID)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return toReelRespond(row), nil
}

// Feed 分页取最新 Reels
// 任何存储错误都退回演示数据：feed 永远返回 200
func (s *reelsService) Feed(page, limit int, callerUserId string) (*respond.FeedRespond, error) {
	if page <= 0 {
		page = constants.DEFAULT_FEED_PAGE
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if callerUserId == "" {
		callerUserId = constants.EMPTY_CALLER_ID
	}

	if s.repos == nil {
		return demoFeed(page, limit), nil
	}

	rows, err := s.repos.Reel.Feed(callerUserId, limit, (page-1)*limit)
	if err != nil {
		zap.L().Warn("feed query failed, serving demo data", zap.Error(err))
		return demoFeed(page, limit), nil
	}
	total, err := s.repos.Reel.Count()
	if err != nil {
		zap.L().Warn("feed count failed, serving demo data", zap.Error(err))
		return demoFeed(page, limit), nil
	}

	// 整页一条批量浏览数更新，应答中的计数已含本次浏览
	viewed := incrementViews(s.repos, rows)

	reelsResp := make([]respond.ReelRespond, 0, len(rows))
	for i := range rows {
		resp := toReelRespond(&rows[i])
		if viewed {
			resp.ViewsCount++
		}
		reelsResp = append(reelsResp, *resp)
	}
	return &respond.FeedRespond{
		Reels:      reelsResp,
		Pagination: respond.Pagination{Page: page, Limit: limit, Total: total},
	}, nil
}

// GetById 取单条 Reel，读取计一次浏览
func (s *reelsService) GetById(id, callerUserId string) (*respond.ReelRespond, error) {
	if strings.HasPrefix(id, constants.DEMO_REEL_PREFIX) {
		if entry, ok := findDemo(id); ok {
			reel := entry.reel
			return &reel, nil
		}
		return nil, errorx.New(errorx.CodeNotFound, "Reel не найден")
	}
	if s.repos == nil {
		return nil, errorx.ErrServerBusy
	}
	if callerUserId == "" {
		callerUserId = constants.EMPTY_CALLER_ID
	}

	row, err := s.repos.Reel.FindRowById(id, callerUserId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "Reel не найден")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	resp := toReelRespond(row)
	if incrementViews(s.repos, []repository.ReelRow{*row}) {
		resp.ViewsCount++
	}
	return resp, nil
}

// GetVideo 取视频内容
// 演示 Reel 返回远程地址，真实 Reel 返回内联 base64
func (s *reelsService) GetVideo(id string) (*respond.VideoRespond, error) {
	if strings.HasPrefix(id, constants.DEMO_REEL_PREFIX) {
		if entry, ok := findDemo(id); ok {
			return &respond.VideoRespond{
				Video:    entry.videoUrl,
				MimeType: entry.reel.MimeType,
				Filename: entry.reel.VideoFilename,
			}, nil
		}
		return nil, errorx.New(errorx.CodeNotFound, "Reel не найден")
	}
	if s.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	reel, err := s.repos.Reel.FindById(id)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "Reel не найден")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return &respond.VideoRespond{
		Video:    reel.VideoData,
		MimeType: reel.MimeType,
		Filename: reel.VideoFilename,
	}, nil
}

// ToggleLike 点赞/取消点赞
// 删除/插入、重算、回写三步在同一事务内，计数以 reel_likes 的 COUNT 为准
func (s *reelsService) ToggleLike(reelId string, req request.ToggleLikeRequest) (*respond.ToggleLikeRespond, error) {
	if req.UserId == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "ID пользователя обязателен")
	}
	if strings.HasPrefix(reelId, constants.DEMO_REEL_PREFIX) {
		entry, ok := findDemo(reelId)
		if !ok {
			return nil, errorx.New(errorx.CodeNotFound, "Reel не найден")
		}
		// 演示数据不落库，模拟一次点赞成功
		return &respond.ToggleLikeRespond{LikesCount: entry.reel.LikesCount + 1, IsLiked: true}, nil
	}
	if s.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	var result respond.ToggleLikeRespond
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.Reel.FindById(reelId); err != nil {
			return err
		}

		_, err := tx.Reel.FindLike(reelId, req.UserId)
		switch {
		case err == nil:
			if err := tx.Reel.DeleteLike(reelId, req.UserId); err != nil {
				return err
			}
			result.IsLiked = false
		case errorx.GetCode(err) == errorx.CodeNotFound:
			like := model.ReelLike{Id: uuid.NewString(), ReelId: reelId, UserId: req.UserId}
			if err := tx.Reel.CreateLike(&like); err != nil {
				return err
			}
			result.IsLiked = true
		default:
			return err
		}

		count, err := tx.Reel.CountLikes(reelId)
		if err != nil {
			return err
		}
		result.LikesCount = count
		return tx.Reel.UpdateLikesCount(reelId, count)
	})
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "Reel не найден")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return &result, nil
}

// Search 按描述/作者名搜索
func (s *reelsService) Search(query, callerUserId string) ([]respond.ReelRespond, error) {
	if len([]rune(strings.TrimSpace(query))) < 2 {
		return nil, errorx.New(errorx.CodeInvalidParam, "Запрос должен содержать минимум 2 символа")
	}
	if s.repos == nil {
		return nil, errorx.ErrServerBusy
	}
	if callerUserId == "" {
		callerUserId = constants.EMPTY_CALLER_ID
	}

	rows, err := s.repos.Reel.Search(strings.TrimSpace(query), callerUserId, constants.SEARCH_RESULT_CAP)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	result := make([]respond.ReelRespond, 0, len(rows))
	for i := range rows {
		result = append(result, *toReelRespond(&rows[i]))
	}
	return result, nil
}

// incrementViews 批量 +1，失败只记日志（浏览数不是关键数据）
func incrementViews(repos *repository.Repositories, rows []repository.ReelRow) bool {
	if len(rows) == 0 {
		return false
	}
	ids := make([]string, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].Id)
	}
	if err := repos.Reel.IncrementViews(ids); err != nil {
		zap.L().Warn("views increment failed", zap.Error(err))
		return false
	}
	return true
}

func toReelRespond(row *repository.ReelRow) *respond.ReelRespond {
	resp := &respond.ReelRespond{
		Id:            row.Id,
		UserId:        row.UserId,
		VideoFilename: row.VideoFilename,
		FileSize:      row.FileSize,
		MimeType:      row.MimeType,
		Caption:       row.Caption,
		Music:         row.Music,
		Duration:      row.Duration,
		LikesCount:    row.LikesCount,
		ViewsCount:    row.ViewsCount,
		CreatedAt:     row.CreatedAt,
		UserName:      row.UserName,
		UserAvatar:    row.UserAvatar,
		IsLiked:       row.IsLiked != 0,
	}
	// 作者行被删后的兜底展示
	if resp.UserName == "" {
		resp.UserName = constants.PLACEHOLDER_USER_NAME
	}
	if resp.UserAvatar == "" {
		resp.UserAvatar = constants.PLACEHOLDER_AVATAR
	}
	return resp
}
