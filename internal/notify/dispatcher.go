package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dentaldesk/clinic-queue/internal/models"
)

// Sink is where delivered messages are recorded. The clinic store satisfies
// it.
type Sink interface {
	AppendWhatsAppLog(entry models.WhatsAppLog) models.WhatsAppLog
}

// Dispatcher queues messages off the request path and records them one at a
// time. Delivery can never fail the API call that triggered it.
type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Message
	wg    sync.WaitGroup
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Message, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	entry := d.sink.AppendWhatsAppLog(models.WhatsAppLog{
		PatientID:     msg.PatientID,
		AppointmentID: msg.AppointmentID,
		Type:          msg.Type,
		Status:        models.WhatsAppStatusSent,
		Payload: map[string]string{
			"phone": msg.Phone,
			"text":  msg.Text,
			"link":  Link(msg.Phone, msg.Text),
		},
	})

	d.log.Debug().
		Str("log_id", entry.ID).
		Str("type", msg.Type).
		Msg("whatsapp message recorded")
}

// Dispatch enqueues a message. A full queue drops the message rather than
// blocking the caller.
func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.log.Warn().Str("type", msg.Type).Msg("notify queue full, dropping message")
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}
