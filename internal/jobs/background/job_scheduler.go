package background

import (
	"context"
	"log"
	"time"

	"cafemart/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages background jobs.
type JobScheduler struct {
	scheduler  gocron.Scheduler
	catalogSvc services.CatalogService
}

// NewJobScheduler creates a scheduler with the catalog cache refresh job
// registered.
func NewJobScheduler(catalogSvc services.CatalogService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		catalogSvc: catalogSvc,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(js.refreshCatalogCache),
		gocron.WithName("catalog-cache-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) refreshCatalogCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := js.catalogSvc.RefreshProductList(ctx); err != nil {
		log.Printf("WARN: catalog cache refresh failed: %v", err)
	}
}
