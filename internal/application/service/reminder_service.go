package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/rgsalon/salonpos-api/internal/config"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
)

// ReminderService runs the daily BNPL settlement sweep: clients whose agreed
// settlement date has arrived get a WhatsApp nudge about their outstanding
// balance. Send failures are logged and never block the sweep.
type ReminderService struct {
	clientRepo   repository.ClientRepository
	twilioClient *twilio.RestClient
	fromWhatsApp string
	schedule     string
	log          *logrus.Logger
	cron         *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(clientRepo repository.ClientRepository, cfg config.TwilioConfig, schedule string, log *logrus.Logger) *ReminderService {
	return &ReminderService{
		clientRepo: clientRepo,
		twilioClient: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		fromWhatsApp: cfg.FromWhatsApp,
		schedule:     schedule,
		log:          log,
	}
}

// StartScheduler registers the daily sweep and starts the cron runner
func (s *ReminderService) StartScheduler() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.SendDueReminders(context.Background())
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.log.WithField("schedule", s.schedule).Info("reminder scheduler started")
	return nil
}

// Stop halts the cron runner
func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDueReminders messages every client whose pending settlement date is
// due. Returns the number of reminders sent.
func (s *ReminderService) SendDueReminders(ctx context.Context) int {
	clients, err := s.clientRepo.ListWithDuePending(ctx, time.Now())
	if err != nil {
		s.log.WithError(err).Error("could not load clients for reminder sweep")
		return 0
	}

	sent := 0
	for _, c := range clients {
		if c.Phone == "" || c.PendingPaymentReceivingDate == nil {
			s.log.WithField("client", c.FullName).Debug("no phone number or due date; skipping reminder")
			continue
		}

		to := c.Phone
		if !strings.HasPrefix(to, "whatsapp:") {
			to = "whatsapp:" + to
		}

		body := fmt.Sprintf(
			"Hi %s, a gentle reminder from RG Salon: your pending balance of ₹%.2f was due on %s. Please visit us or call to settle it. Thank you!",
			c.FullName, c.PendingPayment, c.PendingPaymentReceivingDate.Format("02 Jan 2006"),
		)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetFrom("whatsapp:" + s.fromWhatsApp)
		params.SetBody(body)

		resp, err := s.twilioClient.Api.CreateMessage(params)
		if err != nil {
			s.log.WithError(err).WithField("client", c.FullName).Warn("reminder send failed")
			continue
		}
		if resp.Sid != nil {
			s.log.WithFields(logrus.Fields{"client": c.FullName, "sid": *resp.Sid}).Info("reminder sent")
		}
		sent++
	}
	return sent
}
