package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/kevin-chtw/tw_advisor/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	out, err := execute(t, "111m234m567p111s33m")
	require.NoError(t, err)
	assert.Contains(t, out, "当前: 听牌")
	assert.Contains(t, out, "1. 打4万  11001  听牌：进 1 门  [2万]")

	out, err = execute(t, "--laizi", "6p", "123456789m", "55s79s6p")
	require.NoError(t, err)
	assert.Contains(t, out, "癞子: 6筒")
	assert.Contains(t, out, "1. 已胡牌  9999")
}

func TestRootCmdJSON(t *testing.T) {
	out, err := execute(t, "--config", "../../etc/advisor.yaml", "--json", "--top", "2", "1223456789m555p7z")
	require.NoError(t, err)

	ack := &service.AnalyzeAck{}
	require.NoError(t, json.Unmarshal([]byte(out), ack))
	assert.True(t, ack.Declared)
	require.Len(t, ack.Suggestions, 2)
	assert.Equal(t, "杠红中", ack.Suggestions[0].Discard)
	assert.Equal(t, "1万", ack.Suggestions[1].Discard)
}

func TestRootCmdError(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "123m")
	assert.Error(t, err)

	_, err = execute(t, "--rule", "sichuan", "111m234m567p111s55m")
	assert.ErrorIs(t, err, service.ErrUnknownRule)
}
