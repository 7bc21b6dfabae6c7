package moderation

import (
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestHighestPosition(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "everyone", Position: 0},
		{ID: "helper", Position: 3},
		{ID: "mod", Position: 8},
	}

	assert.Equal(t, 8, highestPosition([]string{"helper", "mod"}, roles))
	assert.Equal(t, 3, highestPosition([]string{"helper", "deleted-role"}, roles))
	assert.Equal(t, 0, highestPosition(nil, roles))
}

func TestIsUnknownMember(t *testing.T) {
	unknown := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMember},
	}
	forbidden := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusForbidden},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeMissingPermissions},
	}

	assert.True(t, isUnknownMember(unknown))
	assert.False(t, isUnknownMember(forbidden))
	assert.False(t, isUnknownMember(errPlatform))
}
