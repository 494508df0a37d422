package test

import (
	"testing"

	"capstone-panel-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestDoRequestSuccessEnvelope(t *testing.T) {
	resp := DoRequest(t, func(c *gin.Context) {
		response.Success(c, map[string]string{"hello": "world"})
	}, nil)

	NoError(t, resp)
	require.Equal(t, "success", resp.Msg)
	require.NotNil(t, resp.Data)
}

func TestDoRequestFailEnvelope(t *testing.T) {
	resp := DoRequest(t, func(c *gin.Context) {
		response.Fail(c, response.ErrNotFound)
	}, nil)

	ErrorEqual(t, response.ErrNotFound, resp)
}
