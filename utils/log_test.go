package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLogEmbed(t *testing.T) {
	embed := buildLogEmbed(Warn, "Punish", "Audit write failed", "")

	assert.Equal(t, "WARN Log", embed.Title)
	assert.Equal(t, 15105570, embed.Color)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "Punish", embed.Fields[0].Value)
	assert.Equal(t, "-", embed.Fields[2].Value)
}

func TestSendLogWithoutChannelIsNoop(t *testing.T) {
	assert.NoError(t, LogInfo(nil, "", "System", "Startup", "ok"))

	l := &ChannelLogger{}
	l.Warn("System", "Startup", "no channel configured")
}
