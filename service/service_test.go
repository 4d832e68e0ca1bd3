package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/kevin-chtw/tw_advisor/config"
	"github.com/kevin-chtw/tw_advisor/mahjong"
	"github.com/kevin-chtw/tw_advisor/service"
	"github.com/kevin-chtw/tw_advisor/storage"
	"github.com/kevin-chtw/tw_advisor/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func newAdvisor(t *testing.T) *service.Advisor {
	t.Helper()
	conf, err := config.Load("../etc/advisor.yaml")
	require.NoError(t, err)
	cache := storage.NewAnalysisCache(conf.Cache.MaxCost, conf.Cache.TTL)
	require.NoError(t, cache.Init())
	t.Cleanup(func() { cache.Shutdown() })

	advisor, err := service.NewAdvisor(conf, cache)
	require.NoError(t, err)
	return advisor
}

func TestHandlerAnalyze(t *testing.T) {
	h := service.NewHandler(newAdvisor(t))
	tests := []struct {
		name     string
		req      *service.AnalyzeReq
		shanten  int
		declared bool
		top      string
	}{
		{"win", &service.AnalyzeReq{Hand: "111m234m567p111s55m"}, -1, false, "已胡牌"},
		{"names", &service.AnalyzeReq{Hand: "1万,1万,1万,2万,3万,4万,5筒,6筒,7筒,1条,1条,1条,3万,3万"}, 0, false, "4万"},
		{"laizi", &service.AnalyzeReq{Hand: "123456789m55s79s6p", Laizi: "6p"}, -1, false, "已胡牌"},
		{"declare", &service.AnalyzeReq{Hand: "1223456789m555p7z"}, 0, true, "杠红中"},
		{"free rule", &service.AnalyzeReq{Hand: "1223456789m555p7z", Rule: "hubei_free"}, 0, false, "中"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack, err := h.Analyze(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.shanten, ack.Shanten)
			assert.Equal(t, tt.declared, ack.Declared)
			require.NotEmpty(t, ack.Suggestions)
			assert.Equal(t, tt.top, ack.Suggestions[0].Discard)
		})
	}
}

func TestHandlerAnalyzeCached(t *testing.T) {
	conf := config.Default()
	cache := storage.NewAnalysisCache(conf.Cache.MaxCost, time.Minute)
	require.NoError(t, cache.Init())
	defer cache.Shutdown()
	advisor, err := service.NewAdvisor(conf, cache)
	require.NoError(t, err)

	first, err := advisor.Analyze(context.Background(), &service.AnalyzeReq{Hand: "111m234m567p111s33m"})
	require.NoError(t, err)
	cache.Wait()
	hand, err := mahjong.ParseTiles("33m111s567p234m111m")
	require.NoError(t, err)
	_, ok := cache.Get(mahjong.RuleHubei, hand, mahjong.TileNull)
	assert.True(t, ok)

	second, err := advisor.Analyze(context.Background(), &service.AnalyzeReq{Hand: "33m111s567p234m111m"})
	require.NoError(t, err)
	assert.Equal(t, first.Suggestions, second.Suggestions)
}

func TestHandlerAnalyzeError(t *testing.T) {
	h := service.NewHandler(newAdvisor(t))
	tests := []struct {
		name string
		req  *service.AnalyzeReq
		err  error
	}{
		{"short hand", &service.AnalyzeReq{Hand: "123m"}, mahjong.ErrHandSize},
		{"bad hand", &service.AnalyzeReq{Hand: "12x"}, mahjong.ErrParse},
		{"bad laizi", &service.AnalyzeReq{Hand: "111m234m567p111s55m", Laizi: "0m"}, mahjong.ErrInvalidTile},
		{"unknown rule", &service.AnalyzeReq{Hand: "111m234m567p111s55m", Rule: "sichuan"}, service.ErrUnknownRule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Analyze(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Analyze(ctx, &service.AnalyzeReq{Hand: "111m234m567p111s55m"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandlerRules(t *testing.T) {
	h := service.NewHandler(newAdvisor(t))
	ack, err := h.Rules(context.Background(), &service.RulesReq{})
	require.NoError(t, err)
	assert.Equal(t, mahjong.RuleHubei, ack.Default)
	require.Len(t, ack.Rules, 2)
	assert.Equal(t, "hubei", ack.Rules[0].Name)
	assert.Equal(t, "中", ack.Rules[0].MustDeclare)
	assert.Len(t, ack.Rules[0].Eyes, 9)
	assert.Equal(t, "hubei_free", ack.Rules[1].Name)
	assert.Empty(t, ack.Rules[1].MustDeclare)
}

func TestRemoteMessage(t *testing.T) {
	r := service.NewRemote(newAdvisor(t))
	r.Init()

	req, err := utils.ToStruct(&service.AnalyzeReq{Hand: "123456789m55s79s6p", Laizi: "6p"})
	require.NoError(t, err)
	rsp, err := r.Message(context.Background(), utils.ToAny(req))
	require.NoError(t, err)
	msg, err := rsp.UnmarshalNew()
	require.NoError(t, err)
	ack := &service.AnalyzeAck{}
	require.NoError(t, utils.FromStruct(msg.(*structpb.Struct), ack))
	assert.Equal(t, -1, ack.Shanten)
	assert.Equal(t, "6筒", ack.Laizi)
	assert.Equal(t, "已胡牌", ack.Suggestions[0].Discard)

	rsp, err = r.Message(context.Background(), utils.ToAny(wrapperspb.String("1223456789m555p7z")))
	require.NoError(t, err)
	msg, err = rsp.UnmarshalNew()
	require.NoError(t, err)
	ack = &service.AnalyzeAck{}
	require.NoError(t, utils.FromStruct(msg.(*structpb.Struct), ack))
	assert.True(t, ack.Declared)
	assert.Equal(t, "hubei", ack.Rule)
	assert.Equal(t, "杠红中", ack.Suggestions[0].Discard)
}

func TestRemoteMessageError(t *testing.T) {
	r := service.NewRemote(newAdvisor(t))
	r.Init()

	_, err := r.Message(context.Background(), nil)
	assert.Error(t, err)

	_, err = r.Message(context.Background(), utils.ToAny(wrapperspb.Int32(1)))
	assert.ErrorContains(t, err, "invalid request type")

	_, err = r.Message(context.Background(), utils.ToAny(wrapperspb.String("123m")))
	assert.ErrorIs(t, err, mahjong.ErrHandSize)

	_, err = r.Message(context.Background(), &anypb.Any{TypeUrl: utils.TypeUrl(&structpb.Struct{}), Value: []byte{0xff}})
	assert.Error(t, err)
}
