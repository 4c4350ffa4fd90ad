package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk/clinic-queue/internal/clinic"
	domain "github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/httpresp"
	"github.com/dentaldesk/clinic-queue/internal/middleware"
	ucQueue "github.com/dentaldesk/clinic-queue/internal/usecase/queue"
)

// QueueHandler is the doctor-facing dashboard surface: today's queue, status
// moves, visit completion and the summary header.
type QueueHandler struct {
	store           *clinic.Store
	changeStatusUC  *ucQueue.ChangeStatus
	completeVisitUC *ucQueue.CompleteVisit
}

func NewQueueHandler(
	store *clinic.Store,
	changeStatusUC *ucQueue.ChangeStatus,
	completeVisitUC *ucQueue.CompleteVisit,
) *QueueHandler {
	return &QueueHandler{
		store:           store,
		changeStatusUC:  changeStatusUC,
		completeVisitUC: completeVisitUC,
	}
}

// --------- Requests ---------

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CompleteVisitRequest struct {
	Diagnosis        string `json:"diagnosis"`
	TreatmentNotes   string `json:"treatment_notes"`
	PrescriptionText string `json:"prescription_text"`
	FollowupDate     string `json:"followup_date"`
	Amount           string `json:"amount"`
}

// --------- Handlers ---------

// ListToday returns today's appointments in insertion order. By default the
// list is scoped to the logged-in doctor; ?doctor_id= selects another chair
// and ?all=true shows the whole clinic.
func (h *QueueHandler) ListToday(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	if doctorID == "" && c.Query("all") != "true" {
		doctorID = c.GetString(middleware.ContextDoctorID)
	}

	httpresp.List(c, h.store.TodayAppointments(doctorID))
}

func (h *QueueHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.changeStatusUC.Execute(c.Param("id"), domain.Status(req.Status))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *QueueHandler) CompleteVisit(c *gin.Context) {
	var req CompleteVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.completeVisitUC.Execute(ucQueue.CompleteVisitInput{
		AppointmentID:    c.Param("id"),
		Diagnosis:        req.Diagnosis,
		TreatmentNotes:   req.TreatmentNotes,
		PrescriptionText: req.PrescriptionText,
		FollowupDate:     req.FollowupDate,
		Amount:           req.Amount,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *QueueHandler) Summary(c *gin.Context) {
	httpresp.OK(c, h.store.DailySummary())
}
