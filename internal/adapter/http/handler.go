package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"diggle/internal/app/control"
	"diggle/internal/app/observe"
	"diggle/internal/app/ports"
	"diggle/internal/app/saveload"
	"diggle/internal/app/session"
	"diggle/internal/domain/mining"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	Sessions   *session.Manager
	ControlUC  control.UseCase
	ObserveUC  observe.UseCase
	SaveLoadUC saveload.UseCase
	Runs       ports.RunRepository
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	game := s.Group("/api/game")
	game.POST("", h.create)
	game.POST("/observe", h.observe)
	game.POST("/command", h.command)
	game.POST("/save", h.save)
	game.POST("/load", h.load)
	game.GET("/runs", h.runs)

	s.GET("/ops/kpi", h.kpi)
}

type createRequest struct {
	Seed int64 `json:"seed,omitempty"`
}

type createResponse struct {
	SessionID string `json:"session_id"`
	Seed      int64  `json:"seed"`
}

type observeRequest struct {
	SessionID string `json:"session_id"`
}

type commandRequest struct {
	SessionID string `json:"session_id"`
	Command   string `json:"command"`
	Direction string `json:"direction,omitempty"`
	Upgrade   string `json:"upgrade,omitempty"`
}

type saveRequest struct {
	SessionID string `json:"session_id"`
	SlotID    string `json:"slot_id"`
}

type loadRequest struct {
	SlotID string `json:"slot_id"`
}

func (h Handler) create(c context.Context, ctx *app.RequestContext) {
	var body createRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	s := h.Sessions.Create(body.Seed)
	ctx.JSON(consts.StatusCreated, createResponse{SessionID: s.ID, Seed: s.Seed})
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	var body observeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ObserveUC.Execute(c, observe.Request{SessionID: body.SessionID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) command(c context.Context, ctx *app.RequestContext) {
	var body commandRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ControlUC.Execute(c, control.Request{
		SessionID: body.SessionID,
		Command:   control.CommandType(body.Command),
		Direction: mining.Direction(body.Direction),
		Upgrade:   mining.UpgradeTarget(body.Upgrade),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	var body saveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.SaveLoadUC.Save(c, saveload.SaveRequest{
		SessionID: body.SessionID,
		SlotID:    body.SlotID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	var body loadRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.SaveLoadUC.Load(c, saveload.LoadRequest{SlotID: body.SlotID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) runs(c context.Context, ctx *app.RequestContext) {
	if h.Runs == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "run repository not configured")
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	runs, err := h.Runs.ListRecent(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"runs": runs})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, control.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, saveload.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, control.ErrUnknownCommand):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_command", err.Error())
	case errors.Is(err, control.ErrInvalidDirection):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_direction", err.Error())
	case errors.Is(err, mining.ErrUnknownUpgradeTarget):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_upgrade_target", err.Error())
	case errors.Is(err, mining.ErrNotAtSurface):
		writeErrorBody(ctx, consts.StatusConflict, "not_at_surface", err.Error())
	case errors.Is(err, mining.ErrUpgradeMaxed):
		writeErrorBody(ctx, consts.StatusConflict, "upgrade_maxed", err.Error())
	case errors.Is(err, mining.ErrInsufficientCredits):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_credits", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
