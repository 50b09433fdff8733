package calculation

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-fleet/internal/common"
)

// Handler exposes the price computation and revenue query endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

// NewHandler constructs a handler with its own validator instance.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, Validate: validator.New()}
}

type computeRequest struct {
	CustomerID *int64 `json:"customer_id" validate:"required,gt=0"`
	CarID      *int64 `json:"car_id" validate:"required,gt=0"`
}

// Compute handles POST /calculate-total-price.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "calculation service not configured", nil)
		return
	}
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeInvalidRequest, "invalid request payload", nil)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeInvalidRequest, "customer_id and car_id are required positive integers", nil)
		return
	}

	result, err := h.Svc.ComputeAndRecord(r.Context(), *req.CustomerID, *req.CarID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, result)
}

// TotalRevenue handles GET /calculate-total-revenue.
func (h *Handler) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "calculation service not configured", nil)
		return
	}
	total, err := h.Svc.TotalRevenue(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"total_revenue": total})
}

// ListCalculations handles GET /get-all-calculations.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "calculation service not configured", nil)
		return
	}
	records, err := h.Svc.ListAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if records == nil {
		records = []Record{}
	}
	common.JSON(w, http.StatusOK, records)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = common.CodeInternal
		}
		message := appErr.Message
		if message == "" {
			message = "internal error"
		}
		common.JSONError(w, status, code, message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "internal error", nil)
}
