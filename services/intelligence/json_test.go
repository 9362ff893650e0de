package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArrayStripsFencesAndProse(t *testing.T) {
	raw := "Here are your articles:\n```json\n[{\"title\": \"One\"}, {\"title\": \"Two\"}]\n```\nEnjoy!"

	var items []struct {
		Title string `json:"title"`
	}
	require.True(t, decodeArray(raw, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "One", items[0].Title)
}

func TestDecodeArrayRejectsGarbage(t *testing.T) {
	var items []struct{}
	assert.False(t, decodeArray("no brackets here", &items))
	assert.False(t, decodeArray("] backwards [", &items))
	assert.False(t, decodeArray("[ not json ]", &items))
}

func TestDecodeObjectStripsFences(t *testing.T) {
	raw := "```json\n{\"en\": \"Stay curious.\", \"cn\": \"保持好奇。\"}\n```"

	var quote struct {
		EN string `json:"en"`
		CN string `json:"cn"`
	}
	require.True(t, decodeObject(raw, &quote))
	assert.Equal(t, "Stay curious.", quote.EN)
	assert.Equal(t, "保持好奇。", quote.CN)
}

func TestDecodeObjectRejectsGarbage(t *testing.T) {
	var v struct{}
	assert.False(t, decodeObject("plain prose", &v))
	assert.False(t, decodeObject("} {", &v))
}
