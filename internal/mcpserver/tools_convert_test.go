package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTool_SingleText(t *testing.T) {
	input := convertInput{Text: "SCREEN_NAME", Target: "camel"}

	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "camel", output.Target)
	assert.Equal(t, 1, output.Count)
	assert.Equal(t, 0, output.ErrorCount)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "SCREEN_NAME", output.Results[0].Input)
	assert.Equal(t, "screenName", output.Results[0].Output)
	assert.Empty(t, output.Results[0].Error)
}

func TestConvertTool_Batch(t *testing.T) {
	input := convertInput{
		Texts:  []string{"first name", "user_id", "helloWorld"},
		Target: "kebab",
	}

	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 3, output.Count)
	require.Len(t, output.Results, 3)
	assert.Equal(t, "first-name", output.Results[0].Output)
	assert.Equal(t, "user-id", output.Results[1].Output)
	assert.Equal(t, "hello-world", output.Results[2].Output)
}

func TestConvertTool_PerItemErrors(t *testing.T) {
	input := convertInput{
		Texts:  []string{"valid_name", "---"},
		Target: "dot",
	}

	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result, "a bad item should not fail the whole batch")

	assert.Equal(t, 1, output.ErrorCount)
	require.Len(t, output.Results, 2)
	assert.Equal(t, "valid.name", output.Results[0].Output)
	assert.Empty(t, output.Results[1].Output)
	assert.Contains(t, output.Results[1].Error, "no tokens found")
}

func TestConvertTool_MissingTarget(t *testing.T) {
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{Text: "hello"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_UnknownTarget(t *testing.T) {
	input := convertInput{Text: "hello", Target: "banana"}

	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_MissingText(t *testing.T) {
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{Target: "camel"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_BatchLimit(t *testing.T) {
	texts := make([]string, cfg.MaxBatch+1)
	for i := range texts {
		texts[i] = "some_name"
	}

	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{Texts: texts, Target: "camel"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
