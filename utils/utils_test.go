package utils_test

import (
	"testing"

	"github.com/kevin-chtw/tw_advisor/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type payload struct {
	Hand  string   `json:"hand"`
	Laizi string   `json:"laizi,omitempty"`
	Score int      `json:"score"`
	Tags  []string `json:"tags"`
}

func TestTypeUrl(t *testing.T) {
	assert.Equal(t, "type.googleapis.com/google.protobuf.StringValue", utils.TypeUrl(&wrapperspb.StringValue{}))
	assert.Equal(t, "type.googleapis.com/google.protobuf.Struct", utils.TypeUrl(&structpb.Struct{}))
}

func TestToAny(t *testing.T) {
	a := utils.ToAny(wrapperspb.String("123m"))
	require.NotNil(t, a)
	msg, err := a.UnmarshalNew()
	require.NoError(t, err)
	assert.Equal(t, "123m", msg.(*wrapperspb.StringValue).GetValue())
}

func TestStruct(t *testing.T) {
	in := payload{Hand: "123m456p", Score: 11001, Tags: []string{"2万"}}
	s, err := utils.ToStruct(in)
	require.NoError(t, err)
	assert.Equal(t, "123m456p", s.Fields["hand"].GetStringValue())
	assert.NotContains(t, s.Fields, "laizi")

	var out payload
	require.NoError(t, utils.FromStruct(s, &out))
	assert.Equal(t, in, out)
}
