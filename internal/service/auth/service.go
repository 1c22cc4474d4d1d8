// Package auth 提供注册/验证/资料相关的业务逻辑
// 验证码为固定值，写入 Redis 只是带 TTL 的记录；缓存不可用时校验退回固定常量
package auth

import (
	"context"

	"go.uber.org/zap"

	"coolpep_server/internal/dao/postgres/repository"
	myredis "coolpep_server/internal/dao/redis"
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/dto/respond"
	"coolpep_server/internal/model"
	"coolpep_server/pkg/constants"
	"coolpep_server/pkg/errorx"

	"github.com/google/uuid"
)

// authService 认证业务逻辑实现
// 通过构造函数注入 Repository 依赖
type authService struct {
	repos *repository.Repositories
}

// NewAuthService 构造函数，repos 为 nil 时所有写路径直接报服务器错误
func NewAuthService(repos *repository.Repositories) *authService {
	return &authService{repos: repos}
}

func verifyCodeKey(userId string) string {
	return "verify_code:" + userId
}

// Register 注册
// 手机号已注册时返回 400，而不是幂等返回旧用户
func (a *authService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if a.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	_, err := a.repos.User.FindByPhone(req.Phone)
	if err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "Пользователь уже существует")
	}
	if errorx.GetCode(err) != errorx.CodeNotFound {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	user := model.User{
		Id:    uuid.NewString(),
		Phone: req.Phone,
		Name:  req.Name,
	}
	if err := a.repos.User.Create(&user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, errorx.New(errorx.CodeUserExist, "Пользователь уже существует")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 验证码缓存失败只记日志，校验侧会退回固定常量
	err = myredis.SetKeyEx(context.Background(), verifyCodeKey(user.Id),
		constants.VERIFICATION_CODE, constants.VERIFICATION_CODE_TTL)
	if err != nil {
		zap.L().Warn("verification code cache failed", zap.Error(err))
	}

	return &respond.RegisterRespond{
		UserId:           user.Id,
		VerificationCode: constants.VERIFICATION_CODE,
		Message:          "Код подтверждения отправлен",
	}, nil
}

// Verify 校验验证码，通过后可顺带补充资料字段并返回完整资料
func (a *authService) Verify(req request.VerifyRequest) (*respond.UserRespond, error) {
	if a.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	expected, err := myredis.GetKey(context.Background(), verifyCodeKey(req.UserId))
	if err != nil {
		zap.L().Warn("verification code lookup failed", zap.Error(err))
		expected = ""
	}
	if expected == "" {
		expected = constants.VERIFICATION_CODE
	}
	if req.Code != expected {
		return nil, errorx.New(errorx.CodeInvalidParam, "Неверный код")
	}
	_ = myredis.DelKeyIfExists(context.Background(), verifyCodeKey(req.UserId))

	if req.UserData != nil {
		fields := map[string]any{}
		if req.UserData.Surname != "" {
			fields["surname"] = req.UserData.Surname
		}
		if req.UserData.Bio != "" {
			fields["bio"] = req.UserData.Bio
		}
		if req.UserData.Gender != "" {
			fields["gender"] = req.UserData.Gender
		}
		if len(fields) > 0 {
			if err := a.repos.User.UpdateFields(req.UserId, fields); err != nil {
				zap.L().Error(err.Error())
				return nil, errorx.ErrServerBusy
			}
		}
	}

	return a.GetUser(req.UserId)
}

// GetUser 按 id 取用户公开资料
func (a *authService) GetUser(id string) (*respond.UserRespond, error) {
	if a.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	user, err := a.repos.User.FindById(id)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "Пользователь не найден")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return toUserRespond(user), nil
}

// UpdateAvatar 更新头像
func (a *authService) UpdateAvatar(id string, req request.UpdateAvatarRequest) (*respond.UserRespond, error) {
	if a.repos == nil {
		return nil, errorx.ErrServerBusy
	}

	if _, err := a.repos.User.FindById(id); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "Пользователь не найден")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if err := a.repos.User.UpdateFields(id, map[string]any{"avatar_url": req.AvatarUrl}); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return a.GetUser(id)
}

func toUserRespond(user *model.User) *respond.UserRespond {
	return &respond.UserRespond{
		Id:        user.Id,
		Phone:     user.Phone,
		Name:      user.Name,
		Surname:   user.Surname,
		Bio:       user.Bio,
		Gender:    user.Gender,
		AvatarUrl: user.AvatarUrl,
	}
}
