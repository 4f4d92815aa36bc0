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

type BookingService interface {
	CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id uint) (domain.Booking, error)
}

type BookingHandler struct {
	svc          BookingService
	destinations DestinationService
}

func NewBookingHandler(svc BookingService, destinations DestinationService) *BookingHandler {
	return &BookingHandler{
		svc:          svc,
		destinations: destinations,
	}
}

// HandleBook validates the booking form posted from a destination page and
// either confirms the booking or re-renders the page with the field errors.
func (h *BookingHandler) HandleBook(ctx *gin.Context) {
	id, ok := parseID(ctx, "destination", "id")
	if !ok {
		return
	}

	destination, err := h.destinations.GetDestination(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("destination", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleBook -> h.destinations.GetDestination -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	var form request.BookingForm
	if err = ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, fields := form.Parse(destination.ID)
	if fields != nil {
		response.AddFlash(ctx, response.FlashDanger, "There was a problem with your booking.")
		renderDestinationPage(ctx, http.StatusOK, destination, form, fields)
		return
	}

	booking, err = h.svc.CreateBooking(ctx.Request.Context(), booking)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("destination", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleBook -> h.svc.CreateBooking -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.AddFlash(ctx, response.FlashSuccess, "Booking created successfully!")
	response.Render(ctx, http.StatusOK, "booking_success.html", gin.H{
		"Title":       "Booking confirmed",
		"Booking":     booking,
		"Destination": destination,
	})
}

func (h *BookingHandler) HandleListBookings(ctx *gin.Context) {
	bookings, err := h.svc.ListBookings(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBookings -> h.svc.ListBookings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.Render(ctx, http.StatusOK, "admin_bookings.html", gin.H{
		"Title":    "Bookings",
		"Bookings": bookings,
	})
}

func (h *BookingHandler) HandleCancelBooking(ctx *gin.Context) {
	id, ok := parseID(ctx, "booking", "id")
	if !ok {
		return
	}

	if _, err := h.svc.CancelBooking(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("booking", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleCancelBooking -> h.svc.CancelBooking -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.SetFlash(ctx, response.FlashInfo, "Booking cancelled")
	redirect(ctx, "/admin/bookings")
}
