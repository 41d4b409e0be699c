package jobs

import (
	"context"
	"errors"
	"log/slog"

	"bakeshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PartnerAssignmentJob manages the scheduled dispatch of orders to delivery
// partners. Runs every five seconds to match the ready backlog with available
// partners.
type PartnerAssignmentJob struct {
	handler commands.DispatchOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPartnerAssignmentJob creates a new job for dispatching orders.
// Uses DispatchOrdersCommandHandler to process partner assignments every five seconds.
func NewPartnerAssignmentJob(handler commands.DispatchOrdersCommandHandler, logger *slog.Logger) *PartnerAssignmentJob {
	return &PartnerAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "partner_assignment_job"),
	}
}

// Start begins the partner assignment job to run every five seconds.
func (j *PartnerAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrdersToDispatch) &&
				!errors.Is(err, commands.ErrNoOnlinePartnersFound) {
				j.logger.ErrorContext(ctx, "Partner assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Partner assignment job started (running every five seconds)")
	return nil
}

// Stop stops the partner assignment job.
func (j *PartnerAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Partner assignment job stopped")
}
