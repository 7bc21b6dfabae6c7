package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

type LogLevel string

const (
	Info  LogLevel = "INFO"
	Warn  LogLevel = "WARN"
	Error LogLevel = "ERROR"
)

func getColor(level LogLevel) int {
	switch level {
	case Info:
		return 3066993 // Green
	case Warn:
		return 15105570 // Orange
	case Error:
		return 15158332 // Red
	default:
		return 3447003 // Blue
	}
}

func buildLogEmbed(level LogLevel, module, operation, extraInfo string) *discordgo.MessageEmbed {
	if extraInfo == "" {
		extraInfo = "-"
	}
	return &discordgo.MessageEmbed{
		Title: string(level) + " Log",
		Color: getColor(level),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Module", Value: module},
			{Name: "Operation", Value: operation},
			{Name: "Details", Value: extraInfo},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func sendLog(s *discordgo.Session, channelID string, level LogLevel, module, operation, extraInfo string) error {
	if channelID == "" {
		return nil
	}
	_, err := s.ChannelMessageSendEmbed(channelID, buildLogEmbed(level, module, operation, extraInfo))
	if err != nil {
		return fmt.Errorf("failed to send log to channel %s: %w", channelID, err)
	}
	return nil
}

func LogInfo(s *discordgo.Session, channelID, module, operation, extraInfo string) error {
	return sendLog(s, channelID, Info, module, operation, extraInfo)
}

func LogWarn(s *discordgo.Session, channelID, module, operation, extraInfo string) error {
	return sendLog(s, channelID, Warn, module, operation, extraInfo)
}

func LogError(s *discordgo.Session, channelID, module, operation, extraInfo string) error {
	return sendLog(s, channelID, Error, module, operation, extraInfo)
}

// ChannelLogger posts operational events to the configured log channel and
// mirrors them to the process log.
type ChannelLogger struct {
	Session   *discordgo.Session
	ChannelID string
}

func (l *ChannelLogger) Info(module, operation, extraInfo string) {
	l.write(Info, module, operation, extraInfo)
}

func (l *ChannelLogger) Warn(module, operation, extraInfo string) {
	l.write(Warn, module, operation, extraInfo)
}

func (l *ChannelLogger) Error(module, operation, extraInfo string) {
	l.write(Error, module, operation, extraInfo)
}

func (l *ChannelLogger) write(level LogLevel, module, operation, extraInfo string) {
	log.Printf("[%s] %s: %s: %s", module, level, operation, extraInfo)
	if err := sendLog(l.Session, l.ChannelID, level, module, operation, extraInfo); err != nil {
		log.Printf("Failed to send %s log: %v", level, err)
	}
}
