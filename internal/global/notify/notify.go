// Package notify 将批量操作的结果推送到配置的 Webhook 地址，
// 供管理端以外的系统（如学院通知群机器人）订阅。
package notify

import (
	"context"
	"log/slog"
	"time"

	"capstone-panel-system/config"
	"capstone-panel-system/internal/global/httpclient"
	"capstone-panel-system/internal/global/logger"
)

var log *slog.Logger

func Init() {
	log = logger.New("Notify")
}

// Event 推送事件体
type Event struct {
	Kind       string `json:"kind"` // panel.auto_create / assign.auto
	School     string `json:"school"`
	Department string `json:"department"`
	Payload    any    `json:"payload"`
	OccurredAt int64  `json:"occurred_at"`
}

// Push 异步推送事件，未配置 Webhook 时为空操作
// 推送失败只记日志，不影响业务结果
func Push(kind, school, department string, payload any) {
	cfg := config.Get().Webhook
	if cfg.URL == "" {
		return
	}

	event := Event{
		Kind:       kind,
		School:     school,
		Department: department,
		Payload:    payload,
		OccurredAt: time.Now().Unix(),
	}

	go func() {
		timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := httpclient.Client.R().
			SetContext(ctx).
			SetBody(event).
			Post(cfg.URL)
		if err != nil {
			log.Warn("推送 Webhook 失败", "kind", kind, "error", err)
			return
		}
		if resp.StatusCode() >= 400 {
			log.Warn("Webhook 返回错误状态", "kind", kind, "status", resp.StatusCode())
		}
	}()
}
