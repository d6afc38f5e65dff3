package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yaebk/cs390-podcast/internal/domain/ports"
	"github.com/yaebk/cs390-podcast/internal/usecase"
)

// App manages the lifecycle of the briefing pipeline. Without a schedule it
// performs a single run and exits with that run's status; with one it keeps
// running on the cron schedule until the context is cancelled.
type App struct {
	cron     *cron.Cron
	usecase  *usecase.Briefing
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(briefing *usecase.Briefing, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		usecase:  briefing,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes the pipeline once immediately and then, if a schedule is
// configured, according to the cron schedule.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		_, err := a.usecase.Run(ctx)
		return err
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first briefing immediately")
	if _, err := a.usecase.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial briefing run failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if _, err := a.usecase.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled briefing run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	return nil
}
