package workers

import (
	"context"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/email"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/lifecycle"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/observability"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services"
)

const sweepWorker = "membership_sweep"

// MembershipWorker periodically applies due status transitions to every
// gym's memberships and mails an expiry digest to each affected gym.
type MembershipWorker struct {
	db                *gorm.DB
	membershipService services.MembershipService
	gymRepo           repositories.GymRepository
	mailer            email.Provider
	templates         *email.TemplateManager
	policy            lifecycle.Policy
	clock             clockwork.Clock
	batchSize         int

	cron *cron.Cron
}

func NewMembershipWorker(
	db *gorm.DB,
	membershipService services.MembershipService,
	gymRepo repositories.GymRepository,
	mailer email.Provider,
	policy lifecycle.Policy,
	clock clockwork.Clock,
	batchSize int,
) *MembershipWorker {
	if mailer == nil {
		mailer = email.NoopProvider{}
	}
	return &MembershipWorker{
		db:                db,
		membershipService: membershipService,
		gymRepo:           gymRepo,
		mailer:            mailer,
		templates:         email.NewTemplateManager(),
		policy:            policy,
		clock:             clock,
		batchSize:         batchSize,
	}
}

// Start schedules RunOnce. Overlapping runs are skipped.
func (w *MembershipWorker) Start(schedule string) error {
	w.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := w.cron.AddFunc(schedule, func() {
		_, _ = w.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	w.cron.Start()
	logger.Info("membership sweep scheduled", "schedule", schedule, "batch_size", w.batchSize)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish or ctx to end.
func (w *MembershipWorker) Stop(ctx context.Context) {
	if w.cron == nil {
		return
	}
	select {
	case <-w.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (w *MembershipWorker) RunOnce(ctx context.Context) (*services.SweepReport, error) {
	started := w.clock.Now()
	report, err := w.membershipService.SweepStatuses(ctx, w.db.WithContext(ctx), w.batchSize)
	observability.RecordSweep(started, w.clock.Now())

	if report == nil {
		report = &services.SweepReport{}
	}
	logger.WorkerLog(sweepWorker, "sweep", err,
		"scanned", report.Scanned,
		"updated", report.Updated,
		"gyms_with_expiries", len(report.EnteredGrace),
	)
	if err != nil {
		return report, err
	}

	w.sendDigests(ctx, report.EnteredGrace)
	return report, nil
}

func (w *MembershipWorker) sendDigests(ctx context.Context, byGym map[string][]models.Membership) {
	gymIDs := make([]string, 0, len(byGym))
	for id := range byGym {
		gymIDs = append(gymIDs, id)
	}
	sort.Strings(gymIDs)

	for _, gymID := range gymIDs {
		err := w.sendDigest(ctx, gymID, byGym[gymID])
		logger.WorkerLog(sweepWorker, "expiry_digest", err, "gym_id", gymID, "memberships", len(byGym[gymID]))
	}
}

func (w *MembershipWorker) sendDigest(ctx context.Context, gymID string, expired []models.Membership) error {
	gym, err := w.gymRepo.FindGymByID(w.db.WithContext(ctx), gymID)
	if err != nil {
		return err
	}

	digest := email.ExpiryDigest{GymName: gym.Name, GymMail: gym.Email}
	for _, m := range expired {
		entry := email.DigestEntry{
			EndDate: m.EndDate.Format(time.DateOnly),
			RenewBy: w.policy.GraceDeadline(m.EndDate).Format(time.DateOnly),
		}
		if m.Member != nil {
			entry.MemberName = m.Member.Name
		}
		if m.Plan != nil {
			entry.PlanName = m.Plan.Name
		}
		digest.Entries = append(digest.Entries, entry)
	}

	msg, err := email.BuildExpiryDigest(w.templates, digest)
	if err != nil {
		return err
	}
	return w.mailer.Send(ctx, msg)
}
