package auth

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
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db)
}

func TestRegister(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	resp, err := svc.Register(request.RegisterRequest{Phone: "+79991234567", Name: "Иван"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.UserId == "" {
		t.Error("register must return userId")
	}
	if resp.VerificationCode != constants.VERIFICATION_CODE {
		t.Errorf("code = %q, want %q", resp.VerificationCode, constants.VERIFICATION_CODE)
	}

	// 重复手机号拒绝而不是幂等返回
	_, err = svc.Register(request.RegisterRequest{Phone: "+79991234567", Name: "Иван"})
	if errorx.GetCode(err) != errorx.CodeUserExist {
		t.Errorf("duplicate: code = %d, want %d", errorx.GetCode(err), errorx.CodeUserExist)
	}
}

func TestVerify(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	resp, err := svc.Register(request.RegisterRequest{Phone: "+79991234567", Name: "Иван"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Redis 未初始化，校验退回固定验证码
	_, err = svc.Verify(request.VerifyRequest{UserId: resp.UserId, Code: "0000"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("wrong code: code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}

	user, err := svc.Verify(request.VerifyRequest{
		UserId: resp.UserId,
		Code:   constants.VERIFICATION_CODE,
		UserData: &request.VerifyUserData{
			Surname: "Иванов",
			Bio:     "Люблю путешествия",
			Gender:  "male",
		},
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.Surname != "Иванов" || user.Bio != "Люблю путешествия" || user.Gender != "male" {
		t.Errorf("profile not updated: %+v", user)
	}
	if user.Name != "Иван" {
		t.Errorf("name = %q, want Иван", user.Name)
	}
}

func TestGetUser(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	_, err := svc.GetUser("missing")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("missing user: code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestUpdateAvatar(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	resp, err := svc.Register(request.RegisterRequest{Phone: "+79991234567", Name: "Иван"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.UpdateAvatar(resp.UserId, request.UpdateAvatarRequest{AvatarUrl: "https://cdn.example/a.png"})
	if err != nil {
		t.Fatalf("update avatar: %v", err)
	}
	if user.AvatarUrl != "https://cdn.example/a.png" {
		t.Errorf("avatar = %q", user.AvatarUrl)
	}

	_, err = svc.UpdateAvatar("missing", request.UpdateAvatarRequest{AvatarUrl: "x"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("missing user: code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestDegradedRegister(t *testing.T) {
	svc := NewAuthService(nil)
	_, err := svc.Register(request.RegisterRequest{Phone: "+79991234567", Name: "Иван"})
	if errorx.GetCode(err) != errorx.CodeServerBusy {
		t.Errorf("degraded register: code = %d, want %d", errorx.GetCode(err), errorx.CodeServerBusy)
	}
}
