package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/icopoint/icopoint/internal/domain"
	"github.com/icopoint/icopoint/internal/dto"
	"github.com/icopoint/icopoint/internal/metrics"
	"github.com/icopoint/icopoint/internal/points"
	orderservice "github.com/icopoint/icopoint/internal/service/orderservice"
	"github.com/icopoint/icopoint/pkg/auth"
	"github.com/icopoint/icopoint/pkg/utils"
	"github.com/icopoint/icopoint/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, userID int, in orderservice.Input) (*domain.Order, error)
	GetByID(ctx context.Context, userID int, isAdmin bool, orderID int) (*domain.Order, error)
	Update(ctx context.Context, userID int, isAdmin bool, orderID int, in orderservice.Input) (*domain.Order, error)
	Delete(ctx context.Context, userID int, isAdmin bool, orderID int) error
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func toResponse(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:                 order.ID,
		UserID:             order.UserID,
		InstallationNumber: order.InstallationNumber,
		Date:               order.Date.Format(dto.DateLayout),
		Type:               string(order.Type),
		Subtypes:           order.Subtypes,
		Points:             order.Points,
	}
}

// parseInput validates the DTO and converts it into a service input. A nil
// result means a response has already been written.
func parseInput(w http.ResponseWriter, r *http.Request) *orderservice.Input {
	var req dto.OrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return nil
	}
	return &orderservice.Input{
		InstallationNumber: req.InstallationNumber,
		Date:               date,
		Type:               points.JobType(req.Type),
		Subtypes:           req.Subtypes,
	}
}

func orderID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "orderID"))
}

// AddOrder godoc
//
//	@Summary		Log a new work order
//	@Description	Record a unit of field work; its point value is computed from the rate tables.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.OrderRequestDTO	true	"Order fields"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Unknown job type or illegal subtype"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	in := parseInput(w, r)
	if in == nil {
		return
	}

	order, err := h.orderService.Create(r.Context(), userID, *in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	metrics.OrdersTotal.WithLabelValues("created", string(order.Type)).Inc()
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(order))
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve all work orders logged by the authorized user, newest first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.OrderResponseDTO
	for i := range orders {
		response = append(response, toResponse(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateOrder godoc
//
//	@Summary		Modify a work order
//	@Description	Replace the editable fields of an order owned by the user (or any order, for admins); points are recomputed.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	int					true	"Order id"
//	@Param			request	body	dto.OrderRequestDTO	true	"Order fields"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order owner"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		422	{object}	utils.Response	"Unknown job type or illegal subtype"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	isAdmin, _ := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	in := parseInput(w, r)
	if in == nil {
		return
	}

	order, err := h.orderService.Update(r.Context(), userID, isAdmin, id, *in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	metrics.OrdersTotal.WithLabelValues("updated", string(order.Type)).Inc()
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}

// DeleteOrder godoc
//
//	@Summary		Delete a work order
//	@Description	Remove an order owned by the user (or any order, for admins)
//	@Tags			Orders
//	@Produce		json
//	@Param			orderID	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		204	"Order deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order owner"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	isAdmin, _ := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.orderService.Delete(r.Context(), userID, isAdmin, id); err != nil {
		respondServiceError(w, err)
		return
	}
	metrics.OrdersTotal.WithLabelValues("deleted", "").Inc()
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetForm godoc
//
//	@Summary		Get the order form definition
//	@Description	List every job type with its legal subtypes and their point values
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	dto.JobTypeFormDTO
//	@Router			/api/orders/form [get]
func (h *OrderHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	var response []dto.JobTypeFormDTO
	for _, jt := range points.JobTypes() {
		form := dto.JobTypeFormDTO{Type: string(jt)}
		for _, st := range points.Subtypes(jt) {
			rate, _ := points.Lookup(jt, st)
			form.Subtypes = append(form.Subtypes, dto.SubtypeRateDTO{Name: st, Points: rate})
		}
		response = append(response, form)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, orderservice.ErrInvalidJobType), errors.Is(err, orderservice.ErrInvalidSubtype):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
