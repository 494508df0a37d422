package report

import (
	"io"
	"log/slog"
	"testing"

	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/test"
)

func TestCompletionRejectsMalformedBody(t *testing.T) {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))

	// contexts 字段类型不对：必须报参数错误，而不是当成空请求体统计全部上下文
	resp := test.DoRequest(t, Completion, map[string]any{"contexts": "oops"})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
