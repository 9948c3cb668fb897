package main

import (
	"context"
	"strings"

	"github.com/whyrusleeping/hellabot"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/api"
)

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfig("config.yaml")
	if err != nil {
		return err
	}
	botName := config.GetStringOrDefault("botName", "Luma")
	channelName := config.GetStringOrDefault("channelName", "luma")
	serverName := config.GetStringOrDefault("serverName", "irc.euirc.net:6667")
	luma := api.NewAPI(config)
	ircBot, err := hbot.NewBot(serverName, botName)
	if err != nil {
		return err
	}
	var trigger = hbot.Trigger{
		Condition: func(b *hbot.Bot, m *hbot.Message) bool {
			return true
		},
		Action: func(b *hbot.Bot, m *hbot.Message) bool {
			if m.Command != "PRIVMSG" {
				return true
			}
			// Only react when addressed by name, so the bot doesn't barge into every conversation.
			if !strings.HasPrefix(strings.ToLower(m.Content), strings.ToLower(botName)) {
				return true
			}
			prompt := strings.TrimSpace(m.Content[len(botName):])
			if len(prompt) == 0 || prompt[0] == '@' || len(m.To) == 0 || m.To[0] != '#' {
				return false
			}
			if prompt[0] == ',' || prompt[0] == ':' {
				prompt = strings.TrimSpace(prompt[1:])
			}
			// IRC has no notion of streaming, so the full response is sent in one piece.
			response, err := luma.Respond(context.Background(), prompt)
			if err != nil {
				response = "I'm borked :("
			}
			if response != "" {
				b.Reply(m, m.From+" "+response)
			}
			return true
		},
	}
	ircBot.AddTrigger(trigger)
	ircBot.Channels = []string{"#" + channelName}
	ircBot.Run()
	return nil
}
