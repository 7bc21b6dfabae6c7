package infractions

import (
	"context"
	"fmt"
	"log"
	"moderation-bot/moderation"
	"moderation-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Workflows is implemented by *moderation.Service.
type Workflows interface {
	Punish(ctx context.Context, req moderation.PunishRequest) (*moderation.PunishOutcome, error)
	Kick(ctx context.Context, req moderation.KickRequest) (*moderation.KickOutcome, error)
}

// ErrorReporter posts failures to the operator log channel.
type ErrorReporter interface {
	Error(module, operation, extraInfo string)
}

// HandlePunishCommand handles /punish.
func HandlePunishCommand(s *discordgo.Session, i *discordgo.InteractionCreate, svc Workflows, reporter ErrorReporter) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("[Punish] Failed to defer interaction: %v", err)
		return
	}

	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	req := moderation.PunishRequest{
		GuildID:      i.GuildID,
		ActorID:      i.Member.User.ID,
		InfractionID: int(optionMap["id"].IntValue()),
		Users:        optionMap["users"].StringValue(),
		Message:      optionMap["message"].StringValue(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	outcome, err := svc.Punish(ctx, req)
	if err != nil {
		log.Printf("[Punish] Infraction %d by %s failed: %v", req.InfractionID, req.ActorID, err)
		if reporter != nil {
			reporter.Error("Punish", "Infrastructure failure",
				fmt.Sprintf("Infraction %d invoked by <@%s>: %v", req.InfractionID, req.ActorID, err))
		}
	}

	if outcome.Status != moderation.StatusCompleted {
		utils.SendFollowUpError(s, i.Interaction, outcome.Summary())
		return
	}
	utils.SendFollowUp(s, i.Interaction, outcome.Summary())
}

// HandleKickCommand handles /kick.
func HandleKickCommand(s *discordgo.Session, i *discordgo.InteractionCreate, svc Workflows) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("[Kick] Failed to defer interaction: %v", err)
		return
	}

	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	req := moderation.KickRequest{
		GuildID: i.GuildID,
		ActorID: i.Member.User.ID,
		Users:   optionMap["users"].StringValue(),
	}
	if opt, ok := optionMap["reason"]; ok {
		req.Reason = opt.StringValue()
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	outcome, err := svc.Kick(ctx, req)
	if err != nil {
		log.Printf("[Kick] Kick by %s failed: %v", req.ActorID, err)
		utils.SendFollowUpError(s, i.Interaction, "Could not verify your roles in this server.")
		return
	}
	utils.SendFollowUpEmbed(s, i.Interaction, moderation.KickEmbed(i.Member.User, s.State.User, outcome))
}
