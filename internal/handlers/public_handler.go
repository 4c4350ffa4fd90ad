package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk/clinic-queue/internal/clinic"
	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/httpresp"
	ucQueue "github.com/dentaldesk/clinic-queue/internal/usecase/queue"
)

// PublicHandler serves the unauthenticated surface: the doctor list for the
// forms, walk-in check-in, appointment booking and the queue status page.
type PublicHandler struct {
	store       *clinic.Store
	checkInUC   *ucQueue.CheckIn
	queueStatUC *ucQueue.QueueStatus
}

func NewPublicHandler(
	store *clinic.Store,
	checkInUC *ucQueue.CheckIn,
	queueStatUC *ucQueue.QueueStatus,
) *PublicHandler {
	return &PublicHandler{
		store:       store,
		checkInUC:   checkInUC,
		queueStatUC: queueStatUC,
	}
}

// --------- Requests ---------

type CheckInRequest struct {
	Phone     string `json:"phone" binding:"required"`
	Name      string `json:"name"`
	Age       string `json:"age"`
	DoctorID  string `json:"doctor_id" binding:"required"`
	Complaint string `json:"complaint"`
}

type BookAppointmentRequest struct {
	Phone     string `json:"phone" binding:"required"`
	Name      string `json:"name"`
	Age       string `json:"age"`
	DoctorID  string `json:"doctor_id" binding:"required"`
	Slot      string `json:"slot" binding:"required"`
	Complaint string `json:"complaint"`
}

// --------- Handlers ---------

func (h *PublicHandler) ListDoctors(c *gin.Context) {
	httpresp.List(c, h.store.Doctors())
}

// CheckIn is the walk-in kiosk flow: phone first, details if unseen, token
// out.
func (h *PublicHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.checkInUC.Execute(ucQueue.CheckInInput{
		Phone:     req.Phone,
		Name:      req.Name,
		Age:       req.Age,
		DoctorID:  req.DoctorID,
		Complaint: req.Complaint,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// BookAppointment is the same flow with a caller-chosen slot label.
func (h *PublicHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.checkInUC.Execute(ucQueue.CheckInInput{
		Phone:     req.Phone,
		Name:      req.Name,
		Age:       req.Age,
		DoctorID:  req.DoctorID,
		Complaint: req.Complaint,
		Slot:      req.Slot,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// QueueStatus resolves a token against today's queue. Yesterday's tokens
// resolve to not found.
func (h *PublicHandler) QueueStatus(c *gin.Context) {
	pos, err := h.queueStatUC.Execute(c.Param("token"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, pos)
}
