package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/service"
)

const dashboardPath = "/admin"

// AdminHandler serves the destination back office. Every route is mounted
// behind the admin session guard.
type AdminHandler struct {
	destinations DestinationService
}

func NewAdminHandler(destinations DestinationService) *AdminHandler {
	return &AdminHandler{
		destinations: destinations,
	}
}

func (h *AdminHandler) HandleDashboard(ctx *gin.Context) {
	destinations, err := h.destinations.ListDestinations(ctx.Request.Context(), "")
	if err != nil {
		err = fmt.Errorf("v1.HandleDashboard -> h.destinations.ListDestinations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.Render(ctx, http.StatusOK, "admin_dashboard.html", gin.H{
		"Title":        "Dashboard",
		"Destinations": destinations,
	})
}

func (h *AdminHandler) HandleNewDestination(ctx *gin.Context) {
	renderDestinationForm(ctx, "Add", "/admin/destination/add", request.DestinationForm{}, nil)
}

func (h *AdminHandler) HandleCreateDestination(ctx *gin.Context) {
	var form request.DestinationForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	destination, fields := form.Parse()
	if fields != nil {
		renderDestinationForm(ctx, "Add", "/admin/destination/add", form, fields)
		return
	}

	if _, err := h.destinations.CreateDestination(ctx.Request.Context(), destination); err != nil {
		err = fmt.Errorf("v1.HandleCreateDestination -> h.destinations.CreateDestination -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.SetFlash(ctx, response.FlashSuccess, "Destination added")
	redirect(ctx, dashboardPath)
}

func (h *AdminHandler) HandleEditDestination(ctx *gin.Context) {
	id, ok := parseID(ctx, "destination", "id")
	if !ok {
		return
	}

	destination, err := h.destinations.GetDestination(ctx.Request.Context(), id)
	if err != nil {
		h.renderLookupErr(ctx, "v1.HandleEditDestination", id, err)
		return
	}

	renderDestinationForm(ctx, "Edit", editPath(id), request.NewDestinationForm(destination), nil)
}

func (h *AdminHandler) HandleUpdateDestination(ctx *gin.Context) {
	id, ok := parseID(ctx, "destination", "id")
	if !ok {
		return
	}

	if _, err := h.destinations.GetDestination(ctx.Request.Context(), id); err != nil {
		h.renderLookupErr(ctx, "v1.HandleUpdateDestination", id, err)
		return
	}

	var form request.DestinationForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	destination, fields := form.Parse()
	if fields != nil {
		renderDestinationForm(ctx, "Edit", editPath(id), form, fields)
		return
	}
	destination.ID = id

	if _, err := h.destinations.UpdateDestination(ctx.Request.Context(), destination); err != nil {
		h.renderLookupErr(ctx, "v1.HandleUpdateDestination", id, err)
		return
	}

	response.SetFlash(ctx, response.FlashSuccess, "Destination updated")
	redirect(ctx, dashboardPath)
}

// HandleDeleteDestination refuses to delete destinations that still have
// bookings and reports it on the dashboard.
func (h *AdminHandler) HandleDeleteDestination(ctx *gin.Context) {
	id, ok := parseID(ctx, "destination", "id")
	if !ok {
		return
	}

	err := h.destinations.DeleteDestination(ctx.Request.Context(), id)
	if errors.Is(err, service.ErrDestinationHasBookings) {
		response.SetFlash(ctx, response.FlashDanger, "Destination has bookings and cannot be deleted")
		redirect(ctx, dashboardPath)
		return
	}
	if err != nil {
		h.renderLookupErr(ctx, "v1.HandleDeleteDestination", id, err)
		return
	}

	response.SetFlash(ctx, response.FlashInfo, "Destination deleted")
	redirect(ctx, dashboardPath)
}

func (h *AdminHandler) renderLookupErr(ctx *gin.Context, op string, id uint, err error) {
	if errors.Is(err, service.ErrDestinationNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("destination", "id", id))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
}

func editPath(id uint) string {
	return fmt.Sprintf("/admin/destination/edit/%d", id)
}

func renderDestinationForm(ctx *gin.Context, action, formAction string, form request.DestinationForm, fields request.FieldErrors) {
	response.Render(ctx, http.StatusOK, "admin_destination_form.html", gin.H{
		"Title":      action + " destination",
		"Action":     action,
		"FormAction": formAction,
		"Form":       form,
		"Errors":     fields,
	})
}
