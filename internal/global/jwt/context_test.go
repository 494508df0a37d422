package jwt

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetUserPayload(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// 未登录的请求没有 payload
	payload, exist := GetUserPayload(c)
	require.False(t, exist)
	require.Nil(t, payload)

	// 鉴权中间件写入后可以取回
	claims := &Claims{UserID: 1, EmployeeID: "T2021", Name: "张伟", RoleID: 1}
	c.Set("payload", claims)

	payload, exist = GetUserPayload(c)
	require.True(t, exist)
	require.Equal(t, claims, payload)
}
