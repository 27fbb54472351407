package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sonnes/kid3/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().RenderTags(&buf, []core.TagReport{
		{Path: "a.mp3", Frames: core.Frames{"Title": "Rock & Roll"}},
	}))

	assert.Contains(t, buf.String(), "Rock & Roll", "HTML characters are not escaped")
	assert.Contains(t, buf.String(), "\n  ", "output is indented")

	var got []core.TagReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a.mp3", got[0].Path)
	assert.Equal(t, "Rock & Roll", got[0].Frames["Title"])
}

func TestRenderTagsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).RenderTags(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderListing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).RenderListing(&buf, "/music", nil))
	assert.Equal(t, `{"dir":"/music","files":[]}`+"\n", buf.String())
}
