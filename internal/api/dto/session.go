package dto

import (
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/services"
	"discgolf-session-service/internal/session"
)

type SessionResponse struct {
	State session.State `json:"state"`
}

type CommandResponse struct {
	Command string          `json:"command"`
	Applied bool            `json:"applied"`
	Events  []session.Event `json:"events"`
	State   session.State   `json:"state"`
}

type CommandListResponse struct {
	Commands []string `json:"commands"`
}

type RouteResponse struct {
	Route domain.Route `json:"route"`
}

// StatsResponse carries nil Stats until a throw exists.
type StatsResponse struct {
	Stats *services.SessionStats `json:"stats"`
	Unit  string                 `json:"unit"`
}

type FeedbackResponse struct {
	Tags     []domain.Tag `json:"tags"`
	Messages []string     `json:"messages"`
	Pending  int          `json:"pending"`
}
