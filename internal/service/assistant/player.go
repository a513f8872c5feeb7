package assistant

import (
	"strings"

	"github.com/seu-repo/acessa/internal/domain"
)

// routePlayer handles playback commands. The checks run in table order and
// the first match wins; a command mentioning both "play" and "volume" is a
// play command.
func (r *Router) routePlayer(req domain.CommandRequest, normalized string) (*domain.CommandResponse, error) {
	if req.ContentID == "" {
		return nil, domain.ErrContentIDRequired
	}

	switch {
	case strings.Contains(normalized, "play") || strings.Contains(normalized, "start"):
		return &domain.CommandResponse{
			Action: ActionPlay,
			Text:   "Starting playback",
			Speech: "Playing now",
			Data:   domain.PlaybackData{ContentID: req.ContentID},
		}, nil

	case strings.Contains(normalized, "pause") || strings.Contains(normalized, "stop"):
		return &domain.CommandResponse{
			Action: ActionPause,
			Text:   "Playback paused",
			Speech: "Paused",
			Data:   domain.PlaybackData{ContentID: req.ContentID},
		}, nil

	case strings.Contains(normalized, "volume"):
		direction := "set"
		if strings.Contains(normalized, "up") {
			direction = "up"
		} else if strings.Contains(normalized, "down") {
			direction = "down"
		}
		return &domain.CommandResponse{
			Action: ActionVolume,
			Text:   "Adjusting volume " + direction,
			Speech: "Volume " + direction,
			Data:   domain.VolumeData{ContentID: req.ContentID, Direction: direction},
		}, nil

	case strings.Contains(normalized, "caption") || strings.Contains(normalized, "subtitle"):
		enable := strings.Contains(normalized, "enable") ||
			strings.Contains(normalized, "turn on") ||
			strings.Contains(normalized, " on")
		text := "Captions disabled"
		if enable {
			text = "Captions enabled"
		}
		return &domain.CommandResponse{
			Action: ActionCaptions,
			Text:   text,
			Speech: text,
			Data:   domain.CaptionsData{ContentID: req.ContentID, Enable: enable},
		}, nil

	case strings.Contains(normalized, "describe") || strings.Contains(normalized, "narrate"):
		return &domain.CommandResponse{
			Action: ActionDescribe,
			Text:   "Starting audio description",
			Speech: "Describing the current scene",
			Data:   domain.PlaybackData{ContentID: req.ContentID},
		}, nil

	default:
		return unknownResponse(
			"Player commands: play, pause, volume up or down, enable captions, describe.",
			"You can say play, pause, volume up, enable captions, or describe.",
		), nil
	}
}
