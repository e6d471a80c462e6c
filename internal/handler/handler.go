package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type LandSvc interface {
	List(ctx context.Context) ([]domain.Land, error)
	Create(ctx context.Context, input domain.CreateLandInput) (*domain.Land, error)
	UpdateStatus(ctx context.Context, landID string, status domain.LandStatus) error
	Forms(ctx context.Context) ([]domain.BookingForm, error)
	SubmitForm(ctx context.Context, input domain.CreateBookingFormInput) (*domain.BookingForm, error)
}

type Handler struct {
	landService LandSvc
}

func NewHandler(landService LandSvc) *Handler {
	return &Handler{landService: landService}
}

// Index renders the land list page.
func (h *Handler) Index(c *ginext.Context) {
	lands, err := h.landService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", ginext.H{"lands": dto.ToLandResponses(lands)})
}

// Lands

func (h *Handler) ListLands(c *ginext.Context) {
	lands, err := h.landService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLandResponses(lands))
}

func (h *Handler) CreateLand(c *ginext.Context) {
	var req dto.CreateLandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateLandInput{
		LandID:      req.LandID,
		Cost:        req.Cost,
		Square:      req.Square,
		LandDataURL: req.LandDataURL,
		Status:      domain.LandStatus(req.Status),
	}

	land, err := h.landService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLandResponse(*land))
}

func (h *Handler) UpdateLandStatus(c *ginext.Context) {
	var req dto.UpdateLandStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	landID := c.Param("id")
	status := domain.LandStatus(*req.Status)
	if err := h.landService.UpdateStatus(c.Request.Context(), landID, status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"land_id": landID, "status": status.String()})
}

// Forms

func (h *Handler) ListForms(c *ginext.Context) {
	forms, err := h.landService.Forms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FormResponse, 0, len(forms))
	for i := range forms {
		resp = append(resp, dto.ToFormResponse(&forms[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SubmitForm(c *ginext.Context) {
	var req dto.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingFormInput{
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		LandID:  req.LandID,
	}

	form, err := h.landService.SubmitForm(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFormResponse(form))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrLandNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrLandExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
