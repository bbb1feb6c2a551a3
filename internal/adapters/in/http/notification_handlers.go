package http

import (
	"net/http"
	"strconv"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/v1/notifications. The feed is scoped to
// the acting identity: group roles share one feed, customers and
// manufacturers see their personal one.
func (s *Server) ListNotifications(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid identity headers: "+err.Error())
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid limit")
		}
	}

	query, err := queries.NewListNotificationsQuery(actor, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid notification ID")
	}
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid identity headers: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actor)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
