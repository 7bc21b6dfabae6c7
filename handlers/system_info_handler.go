package handlers

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// RecordCounter reports how many catalog entries and punishment records exist.
type RecordCounter interface {
	Counts(ctx context.Context) (infractions int, records int, err error)
}

type systemStats struct {
	Platform      string
	KernelVersion string
	Uptime        time.Duration
	CPUCount      int
	CPUPercent    float64
	MemPercent    float64
	MemUsedMB     uint64
	MemTotalMB    uint64
}

func collectSystemStats(ctx context.Context) systemStats {
	var st systemStats
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		st.CPUCount = n
	}
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		st.CPUPercent = pct[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		st.MemPercent = vm.UsedPercent
		st.MemUsedMB = vm.Used / 1024 / 1024
		st.MemTotalMB = vm.Total / 1024 / 1024
	}
	if info, err := host.InfoWithContext(ctx); err == nil {
		st.Platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
		st.KernelVersion = info.KernelVersion
		st.Uptime = time.Duration(info.Uptime) * time.Second
	}
	return st
}

func systemInfoEmbed(st systemStats, latency time.Duration, guilds, infractions, records int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "System Information",
		Color: 0x5865F2, // Discord Blurple
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💻 OS", Value: st.Platform, Inline: true},
			{Name: "🔧 Kernel", Value: st.KernelVersion, Inline: true},
			{Name: "🐹 Go", Value: runtime.Version(), Inline: true},
			{Name: "🔼 CPUs", Value: fmt.Sprintf("%d", st.CPUCount), Inline: true},
			{Name: "🔥 CPU usage", Value: fmt.Sprintf("%.1f%%", st.CPUPercent), Inline: true},
			{Name: "🧠 Memory", Value: fmt.Sprintf("%.1f%% (%d MB / %d MB)", st.MemPercent, st.MemUsedMB, st.MemTotalMB), Inline: true},
			{Name: "⏱️ Host uptime", Value: st.Uptime.String(), Inline: true},
			{Name: "📶 WebSocket latency", Value: latency.String(), Inline: true},
			{Name: "🚀 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "🌍 Guilds", Value: fmt.Sprintf("%d", guilds), Inline: true},
			{Name: "📚 Infractions", Value: fmt.Sprintf("%d", infractions), Inline: true},
			{Name: "📝 Punishment records", Value: fmt.Sprintf("%d", records), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("System monitor・%s", time.Now().Format("15:04")),
		},
	}
}

func SystemInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate, counter RecordCounter) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	infractions, records, err := counter.Counts(ctx)
	if err != nil {
		log.Printf("[BotInfo] Failed to count records: %v", err)
	}

	guilds := 0
	if s.State != nil {
		guilds = len(s.State.Guilds)
	}

	embed := systemInfoEmbed(collectSystemStats(ctx), s.HeartbeatLatency(), guilds, infractions, records)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[BotInfo] Failed to respond: %v", err)
	}
}
