package indexer

import (
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
)

// Scheduler triggers periodic rescans of the library on a cron schedule.
type Scheduler struct {
	indexer *Indexer
	cron    *cron.Cron
}

// NewScheduler creates a Scheduler that rescans on the given cron spec.
func NewScheduler(idx *Indexer, spec string) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		if err := idx.Scan(); err != nil {
			if errors.Is(err, ErrScanInProgress) {
				log.Infof("Scheduled scan skipped, previous scan still running")
				return
			}
			log.Errorf("Scheduled scan failed: %s", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{indexer: idx, cron: c}, nil
}

// Start begins firing scheduled scans.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Infof("Rescan scheduler registered for library '%s'", s.indexer.Root())
}

// Stop stops the scheduler. A scan already in flight finishes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
