package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/service"
)

type DestinationService interface {
	ListDestinations(ctx context.Context, query string) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id uint) (domain.Destination, error)
	CreateDestination(ctx context.Context, destination domain.Destination) (domain.Destination, error)
	UpdateDestination(ctx context.Context, destination domain.Destination) (domain.Destination, error)
	DeleteDestination(ctx context.Context, id uint) error
}

type DestinationHandler struct {
	svc DestinationService
}

func NewDestinationHandler(svc DestinationService) *DestinationHandler {
	return &DestinationHandler{
		svc: svc,
	}
}

// HandleListDestinations renders the home page, filtered by the optional q
// query parameter.
func (h *DestinationHandler) HandleListDestinations(ctx *gin.Context) {
	query := ctx.Query("q")

	destinations, err := h.svc.ListDestinations(ctx.Request.Context(), query)
	if err != nil {
		err = fmt.Errorf("v1.HandleListDestinations -> h.svc.ListDestinations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.Render(ctx, http.StatusOK, "index.html", gin.H{
		"Query":        query,
		"Destinations": destinations,
	})
}

func (h *DestinationHandler) HandleGetDestination(ctx *gin.Context) {
	id, ok := parseID(ctx, "destination", "id")
	if !ok {
		return
	}

	destination, err := h.svc.GetDestination(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("destination", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetDestination -> h.svc.GetDestination -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	renderDestinationPage(ctx, http.StatusOK, destination, request.BookingForm{NumPeople: "1"}, nil)
}

func renderDestinationPage(ctx *gin.Context, status int, destination domain.Destination, form request.BookingForm, fields request.FieldErrors) {
	response.Render(ctx, status, "destination.html", gin.H{
		"Title":       destination.Name,
		"Destination": destination,
		"Form":        form,
		"Errors":      fields,
	})
}
