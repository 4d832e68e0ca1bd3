package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevin-chtw/tw_advisor/utils"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Remote 供其他服务器调用的后端服务
type Remote struct {
	component.Base
	advisor  *Advisor
	handlers map[string]func(*Advisor, context.Context, proto.Message) (proto.Message, error)
}

func NewRemote(advisor *Advisor) *Remote {
	return &Remote{
		advisor:  advisor,
		handlers: make(map[string]func(*Advisor, context.Context, proto.Message) (proto.Message, error)),
	}
}

// Init 组件初始化
func (m *Remote) Init() {
	m.handlers[utils.TypeUrl(&structpb.Struct{})] = (*Advisor).handleStruct
	m.handlers[utils.TypeUrl(&wrapperspb.StringValue{})] = (*Advisor).handleHand
}

// Message 请求和应答都用 Any 包装，按 TypeUrl 分派
func (m *Remote) Message(ctx context.Context, req *anypb.Any) (ack *anypb.Any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}
	logger.Log.Debug(req.TypeUrl)

	handler, ok := m.handlers[req.TypeUrl]
	if !ok {
		return nil, fmt.Errorf("invalid request type %s", req.TypeUrl)
	}
	msg, err := req.UnmarshalNew()
	if err != nil {
		return nil, err
	}
	rsp, err := handler(m.advisor, ctx, msg)
	if err != nil {
		return nil, err
	}
	return anypb.New(rsp)
}

// handleStruct Struct 的字段与 AnalyzeReq 的 json 字段一致
func (a *Advisor) handleStruct(ctx context.Context, msg proto.Message) (proto.Message, error) {
	req := &AnalyzeReq{}
	if err := utils.FromStruct(msg.(*structpb.Struct), req); err != nil {
		return nil, err
	}
	ack, err := a.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	return utils.ToStruct(ack)
}

// handleHand 只带手牌，默认规则、无癞子
func (a *Advisor) handleHand(ctx context.Context, msg proto.Message) (proto.Message, error) {
	ack, err := a.Analyze(ctx, &AnalyzeReq{Hand: msg.(*wrapperspb.StringValue).GetValue()})
	if err != nil {
		return nil, err
	}
	return utils.ToStruct(ack)
}
