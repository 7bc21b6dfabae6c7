package infractions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"moderation-bot/model"
	"moderation-bot/moderation"
	"moderation-bot/utils"
	infractions_db "moderation-bot/utils/database/infractions"
	"time"

	"github.com/bwmarrin/discordgo"
)

const handlerTimeout = 30 * time.Second

// CatalogStore is the part of the store used by /infractions.
type CatalogStore interface {
	CreateInfraction(ctx context.Context, infraction model.Infraction) (*model.Infraction, error)
	ListInfractions(ctx context.Context) ([]model.Infraction, error)
	DeleteInfraction(ctx context.Context, id int) error
	ListUserInfractions(ctx context.Context, userID string) ([]model.UserInfraction, error)
}

// HandleInfractionsCommand handles /infractions and its subcommands.
func HandleInfractionsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, store CatalogStore) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("[Infractions] Failed to defer interaction: %v", err)
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		utils.SendFollowUpError(s, i.Interaction, "Unknown subcommand.")
		return
	}
	sub := options[0]
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		optionMap[opt.Name] = opt
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	switch sub.Name {
	case "add":
		handleAdd(ctx, s, i.Interaction, store, optionMap)
	case "list":
		displayInfractions(ctx, s, i.Interaction, store, 1)
	case "remove":
		handleRemove(ctx, s, i.Interaction, store, int(optionMap["id"].IntValue()))
	case "user":
		user := optionMap["member"].UserValue(nil)
		displayUserInfractions(ctx, s, i.Interaction, store, user.ID, 1)
	default:
		utils.SendFollowUpError(s, i.Interaction, "Unknown subcommand.")
	}
}

func handleAdd(ctx context.Context, s *discordgo.Session, i *discordgo.Interaction, store CatalogStore, optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	infraction, err := buildInfraction(
		optionMap["id"].IntValue(),
		optionMap["severity"].StringValue(),
		optionMap["punishment"].StringValue(),
		optionMap["duration"].IntValue(),
	)
	if err != nil {
		utils.SendFollowUpError(s, i, err.Error())
		return
	}

	created, err := store.CreateInfraction(ctx, infraction)
	if err != nil {
		if errors.Is(err, infractions_db.ErrInfractionExists) {
			utils.SendFollowUpError(s, i, fmt.Sprintf("Infraction with ID `%d` already exists!", infraction.ID))
			return
		}
		log.Printf("[Infractions] Failed to create infraction %d: %v", infraction.ID, err)
		utils.SendFollowUpError(s, i, "Failed to create the infraction.")
		return
	}
	utils.SendFollowUp(s, i, "Infraction created!\n"+moderation.FormatInfraction(*created))
}

func handleRemove(ctx context.Context, s *discordgo.Session, i *discordgo.Interaction, store CatalogStore, id int) {
	err := store.DeleteInfraction(ctx, id)
	switch {
	case err == nil:
		utils.SendFollowUp(s, i, "Infraction deleted!")
	case errors.Is(err, infractions_db.ErrInfractionInUse):
		utils.SendFollowUpError(s, i, "Infraction is referenced by punishment records and cannot be deleted.")
	case errors.Is(err, infractions_db.ErrInfractionNotFound):
		utils.SendFollowUpError(s, i, "Infraction not deleted!")
	default:
		log.Printf("[Infractions] Failed to delete infraction %d: %v", id, err)
		utils.SendFollowUpError(s, i, "Infraction not deleted!")
	}
}

func displayInfractions(ctx context.Context, s *discordgo.Session, i *discordgo.Interaction, store CatalogStore, page int) {
	infs, err := store.ListInfractions(ctx)
	if err != nil {
		log.Printf("[Infractions] Failed to list infractions: %v", err)
		utils.SendFollowUpError(s, i, "Failed to load the infractions.")
		return
	}
	if len(infs) == 0 {
		utils.SendFollowUp(s, i, "No infractions found in the table!")
		return
	}

	content, page, totalPages := renderInfractionsPage(infs, page)
	utils.SendFollowUpPage(s, i, content, utils.CreatePaginationComponents(page, totalPages, listPagePrefix))
}

func displayUserInfractions(ctx context.Context, s *discordgo.Session, i *discordgo.Interaction, store CatalogStore, userID string, page int) {
	records, err := store.ListUserInfractions(ctx, userID)
	if err != nil {
		log.Printf("[Infractions] Failed to list infractions of user %s: %v", userID, err)
		utils.SendFollowUpError(s, i, "Failed to load the user's infractions.")
		return
	}
	if len(records) == 0 {
		utils.SendFollowUp(s, i, "User has no infractions!")
		return
	}

	content, page, totalPages := renderUserRecordsPage(records, page)
	utils.SendFollowUpPage(s, i, content, utils.CreatePaginationComponents(page, totalPages, userPagePrefix, userID))
}

// IsPaginationID reports whether a component custom id belongs to this package.
func IsPaginationID(customID string) bool {
	_, _, errList := utils.ParsePaginationID(customID, listPagePrefix)
	_, _, errUser := utils.ParsePaginationID(customID, userPagePrefix)
	return errList == nil || errUser == nil
}

// HandlePagination re-renders a paginated list after a button press.
func HandlePagination(s *discordgo.Session, i *discordgo.InteractionCreate, store CatalogStore) {
	if err := utils.DeferUpdate(s, i); err != nil {
		log.Printf("[Infractions] Failed to defer pagination interaction: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	customID := i.MessageComponentData().CustomID
	if page, _, err := utils.ParsePaginationID(customID, listPagePrefix); err == nil {
		displayInfractions(ctx, s, i.Interaction, store, page)
		return
	}
	page, args, err := utils.ParsePaginationID(customID, userPagePrefix)
	if err != nil || len(args) != 1 {
		log.Printf("[Infractions] Invalid pagination custom id: %s", customID)
		return
	}
	displayUserInfractions(ctx, s, i.Interaction, store, args[0], page)
}
