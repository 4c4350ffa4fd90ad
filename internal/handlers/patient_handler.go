package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dentaldesk/clinic-queue/internal/clinic"
	domain "github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/httpresp"
)

type PatientHandler struct {
	store *clinic.Store
}

func NewPatientHandler(store *clinic.Store) *PatientHandler {
	return &PatientHandler{store: store}
}

// --------- Requests ---------

type UpdatePaymentRequest struct {
	Status string   `json:"status" binding:"required"`
	Amount *float64 `json:"amount"`
}

// --------- Handlers ---------

func (h *PatientHandler) Get(c *gin.Context) {
	patient, ok := h.store.GetPatient(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "patient_not_found", "no patient with that id")
		return
	}
	httpresp.OK(c, patient)
}

func (h *PatientHandler) Visits(c *gin.Context) {
	if _, ok := h.store.GetPatient(c.Param("id")); !ok {
		httperr.NotFound(c, "patient_not_found", "no patient with that id")
		return
	}
	httpresp.List(c, h.store.PatientVisits(c.Param("id")))
}

// UpdatePayment marks a visit paid/partial/pending; the amount changes only
// when the request carries one.
func (h *PatientHandler) UpdatePayment(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !domain.IsValidPaymentStatus(req.Status) {
		httperr.BadRequest(c, "invalid_payment_status", "status must be PENDING, PAID or PARTIAL")
		return
	}

	visit, ok := h.store.UpdateVisitPayment(c.Param("id"), domain.PaymentStatus(req.Status), req.Amount)
	if !ok {
		httperr.NotFound(c, "visit_not_found", "no visit with that id")
		return
	}
	httpresp.OK(c, visit)
}
