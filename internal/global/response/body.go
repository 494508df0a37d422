package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success 返回成功响应，data 可选
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{Code: 200, Msg: "success"}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，HTTP 状态码恒为 200，业务状态见 code 字段
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrInternal.WithOrigin(err)
	}
	body := ResponseBody{Code: e.Code, Msg: e.Message}
	if e.Origin != "" {
		body.Data = map[string]string{"origin": e.Origin}
	}
	c.Set(ErrorContextKey, e)
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Recovery 捕获 handler panic，返回 ErrInternal
// 由 middleware.Recovery 以 defer 方式调用
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrInternal.WithOrigin(err))
		c.Abort()
	}
}
