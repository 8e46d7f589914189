package refresh

import (
	"context"
	"pidash/internal/providers"
	"pidash/internal/refresh/interfaces"
	"pidash/internal/services"
	"pidash/internal/structures"
	"sync"

	"github.com/roylee0704/gron"
)

// Scheduler triggers widget refresh cycles on a fixed interval. The ops
// mutex serializes cycles: a timer firing while a previous cycle is still
// in flight waits instead of interleaving writes to the data slots.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.WidgetServiceInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Refresh.Interval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.logger.Debugf(providers.TypePoll, "Refreshing widget data...")
		if err := s.service.RefreshAll(context.Background()); err != nil {
			// failed widgets already hold their empty placeholder;
			// nothing further to do here
			s.logger.Warnf(providers.TypePoll, "Refresh cycle finished with errors: %s", err)
			return
		}
		s.logger.Debugf(providers.TypePoll, "Widget data refreshed")
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunOnce performs one synchronous refresh cycle, used at startup so the
// first widget request never sees a cold slot.
func (s *Scheduler) RunOnce() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	return s.service.RefreshAll(context.Background())
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.WidgetServiceInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
	}
}
