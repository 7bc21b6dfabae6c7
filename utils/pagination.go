package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// CreatePaginationComponents creates a set of pagination buttons.
// Custom ids have the form prefix:page[:arg...].
func CreatePaginationComponents(currentPage, totalPages int, customIDPrefix string, args ...string) []discordgo.MessageComponent {
	if totalPages <= 1 {
		return nil
	}

	buttonArgs := ""
	for _, arg := range args {
		buttonArgs += ":" + arg
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Previous",
					Style:    discordgo.PrimaryButton,
					Disabled: currentPage == 1,
					CustomID: fmt.Sprintf("%s:%d%s", customIDPrefix, currentPage-1, buttonArgs),
				},
				discordgo.Button{
					Label:    fmt.Sprintf("%d/%d", currentPage, totalPages),
					Style:    discordgo.SecondaryButton,
					Disabled: true,
					CustomID: fmt.Sprintf("%s_indicator", customIDPrefix),
				},
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.PrimaryButton,
					Disabled: currentPage == totalPages,
					CustomID: fmt.Sprintf("%s:%d%s", customIDPrefix, currentPage+1, buttonArgs),
				},
			},
		},
	}
}

// ParsePaginationID splits a custom id created by CreatePaginationComponents.
func ParsePaginationID(customID, customIDPrefix string) (page int, args []string, err error) {
	rest, ok := strings.CutPrefix(customID, customIDPrefix+":")
	if !ok {
		return 0, nil, fmt.Errorf("custom id %q does not start with %q", customID, customIDPrefix)
	}
	parts := strings.Split(rest, ":")
	page, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid page in custom id %q: %w", customID, err)
	}
	return page, parts[1:], nil
}

// ClampPage keeps page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}
