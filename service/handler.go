package service

import (
	"context"

	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Handler 面向客户端的前端服务
type Handler struct {
	component.Base
	advisor *Advisor
}

func NewHandler(advisor *Advisor) *Handler {
	return &Handler{advisor: advisor}
}

// Analyze 出牌建议
func (h *Handler) Analyze(ctx context.Context, req *AnalyzeReq) (*AnalyzeAck, error) {
	ack, err := h.advisor.Analyze(ctx, req)
	if err != nil {
		logger.Log.Errorf("analyze %+v: %v", req, err)
		return nil, err
	}
	return ack, nil
}

// Rules 可用规则列表
func (h *Handler) Rules(ctx context.Context, req *RulesReq) (*RulesAck, error) {
	return h.advisor.Rules(), nil
}
