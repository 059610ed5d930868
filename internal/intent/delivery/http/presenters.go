package http

import (
	"strings"

	"mindbet-bot/internal/hotspot"
	"mindbet-bot/internal/model"
)

// --- Request DTOs ---

type resolveReq struct {
	Message string `json:"message" binding:"required"`
}

func (r resolveReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errEmptyMessage
	}
	return nil
}

// --- Response DTOs ---

// resolveResp mirrors model.IntentRecord for the API docs.
type resolveResp struct {
	HasIntent  bool     `json:"has_intent"`
	Command    *string  `json:"command"`
	Args       []string `json:"args"`
	Confidence float64  `json:"confidence"`
	Reply      *string  `json:"reply"`
}

func (h *handler) newResolveResp(r model.IntentRecord) resolveResp {
	args := r.Args
	if args == nil {
		args = []string{}
	}
	return resolveResp{
		HasIntent:  r.HasIntent,
		Command:    r.Command,
		Args:       args,
		Confidence: r.Confidence,
		Reply:      r.Reply,
	}
}

type hotEventsResp struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Analysis string `json:"analysis"`
}

func (h *handler) newHotEventsResp(r hotspot.Report) hotEventsResp {
	return hotEventsResp{
		Title:    r.Title,
		Summary:  r.Summary,
		Analysis: r.Analysis,
	}
}
