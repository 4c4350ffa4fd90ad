package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dentaldesk/clinic-queue/internal/clinic"
	"github.com/dentaldesk/clinic-queue/internal/httpresp"
	"github.com/dentaldesk/clinic-queue/internal/models"
	ucQueue "github.com/dentaldesk/clinic-queue/internal/usecase/queue"
)

type FollowupHandler struct {
	store      *clinic.Store
	reminderUC *ucQueue.FollowupReminder
}

func NewFollowupHandler(store *clinic.Store, reminderUC *ucQueue.FollowupReminder) *FollowupHandler {
	return &FollowupHandler{store: store, reminderUC: reminderUC}
}

// FollowupItem pairs a due visit with the patient to call.
type FollowupItem struct {
	Visit   models.Visit    `json:"visit"`
	Patient *models.Patient `json:"patient,omitempty"`
}

// List returns every visit whose follow-up date has arrived, with the
// patient resolved for display. A dangling patient id leaves the field nil.
func (h *FollowupHandler) List(c *gin.Context) {
	due := h.store.PendingFollowups()

	items := make([]FollowupItem, 0, len(due))
	for _, v := range due {
		item := FollowupItem{Visit: v}
		if p, ok := h.store.GetPatient(v.PatientID); ok {
			item.Patient = &p
		}
		items = append(items, item)
	}
	httpresp.List(c, items)
}

// Remind records the reminder and returns the wa.me link for the UI to open.
func (h *FollowupHandler) Remind(c *gin.Context) {
	link, err := h.reminderUC.Execute(c.Param("patientId"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"link": link})
}

// Notifications lists the recorded WhatsApp stub messages, newest last.
func (h *FollowupHandler) Notifications(c *gin.Context) {
	httpresp.List(c, h.store.WhatsAppLogs())
}
