package handler

import (
	"errors"
	"net/http"
	"strings"

	"coolpep_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// HandleSuccess 返回成功响应
// 对外契约是平铺信封：{"success": true, ...payload}
func HandleSuccess(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// HandleError 通用错误处理
// 业务错误按 errorx 错误码映射 HTTP 状态，消息原样透出；
// 未知错误记日志并按 500 返回统一文案
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(errorx.HTTPStatus(codeErr.Code), gin.H{"error": codeErr.Msg})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": errorx.ErrServerBusy.Msg})
}

// HandleParamError 处理参数绑定错误
// validator.ValidationErrors 翻译后压成一条 error 字符串（信封只有一个 error 字段）
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		translated := RemoveTopStruct(validationErrs.Translate(Trans))
		msgs := make([]string, 0, len(translated))
		for _, msg := range translated {
			msgs = append(msgs, msg)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(msgs, "; ")})
		return
	}

	// 非 validator 错误（JSON 语法错误等）
	zap.L().Error("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": errorx.ErrInvalidParam.Msg})
}
