package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"

	"github.com/google/uuid"
)

const socialRefreshLockKey = "lock:social-refresh"

// StatsFetcher retrieves live follower and engagement numbers for one
// social account.
type StatsFetcher interface {
	FetchStats(ctx context.Context, platform, handle string) (followers int64, engagementRate float64, err error)
}

// SnapshotFetcher is the default fetcher: it re-reads the stored snapshot
// instead of calling out to platform APIs. Deployments with platform
// credentials swap in a real fetcher.
type SnapshotFetcher struct{}

func (SnapshotFetcher) FetchStats(ctx context.Context, platform, handle string) (int64, float64, error) {
	return -1, -1, nil
}

// SocialRefreshWorker periodically recomputes each published creator's
// aggregate follower count and engagement rate and writes them to the
// authoritative metrics record. A redis lease lock keeps exactly one
// instance active across replicas.
type SocialRefreshWorker struct {
	creatorRepo *repository.CreatorRepository
	metricsRepo *repository.MetricsRepository
	cache       *repository.CacheRepository
	fetcher     StatsFetcher
	interval    time.Duration
	lockTTL     time.Duration
	holder      string
	shutdown    chan struct{}
	wg          sync.WaitGroup
}

func NewSocialRefreshWorker(creatorRepo *repository.CreatorRepository, metricsRepo *repository.MetricsRepository, cache *repository.CacheRepository, fetcher StatsFetcher, interval, lockTTL time.Duration) *SocialRefreshWorker {
	if fetcher == nil {
		fetcher = SnapshotFetcher{}
	}
	return &SocialRefreshWorker{
		creatorRepo: creatorRepo,
		metricsRepo: metricsRepo,
		cache:       cache,
		fetcher:     fetcher,
		interval:    interval,
		lockTTL:     lockTTL,
		holder:      uuid.New().String(),
		shutdown:    make(chan struct{}),
	}
}

func (w *SocialRefreshWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		log.Printf("Social refresh worker started, interval %s", w.interval)
		for {
			select {
			case <-w.shutdown:
				log.Println("Social refresh worker shutting down")
				return
			case <-ticker.C:
				w.runOnce()
			}
		}
	}()
}

func (w *SocialRefreshWorker) Stop() {
	close(w.shutdown)
	w.wg.Wait()
}

func (w *SocialRefreshWorker) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), w.lockTTL)
	defer cancel()

	acquired, err := w.cache.AcquireLock(ctx, socialRefreshLockKey, w.holder, w.lockTTL)
	if err != nil {
		log.Printf("Social refresh: failed to acquire lock: %v", err)
		return
	}
	if !acquired {
		return
	}
	defer func() {
		if err := w.cache.ReleaseLock(ctx, socialRefreshLockKey, w.holder); err != nil {
			log.Printf("Social refresh: failed to release lock: %v", err)
		}
	}()

	creators, err := w.creatorRepo.FindAllPublished(ctx)
	if err != nil {
		log.Printf("Social refresh: failed to list creators: %v", err)
		return
	}

	var refreshed int
	for _, creator := range creators {
		select {
		case <-w.shutdown:
			return
		default:
		}
		if err := w.refreshCreator(ctx, creator); err != nil {
			log.Printf("Social refresh: creator %s: %v", creator.UserID, err)
			continue
		}
		refreshed++
	}

	log.Printf("Social refresh: updated %d of %d creators", refreshed, len(creators))
}

func (w *SocialRefreshWorker) refreshCreator(ctx context.Context, creator *models.CreatorProfile) error {
	if len(creator.SocialProfiles) == 0 {
		return nil
	}

	now := time.Now().Unix()
	var totalFollowers int64
	var engagementSum float64
	var engagementCount int

	for i := range creator.SocialProfiles {
		sp := &creator.SocialProfiles[i]
		followers, engagement, err := w.fetcher.FetchStats(ctx, sp.Platform, sp.Handle)
		if err != nil {
			// A failed platform keeps its last snapshot.
			followers, engagement = -1, -1
		}
		if followers >= 0 {
			sp.Followers = followers
		}
		if engagement >= 0 {
			sp.EngagementRate = engagement
		}
		sp.FetchedAt = now

		totalFollowers += sp.Followers
		if sp.EngagementRate > 0 {
			engagementSum += sp.EngagementRate
			engagementCount++
		}
	}

	var avgEngagement float64
	if engagementCount > 0 {
		avgEngagement = engagementSum / float64(engagementCount)
	}

	if _, err := w.creatorRepo.Update(ctx, creator.UserID, creator); err != nil {
		return err
	}
	return w.metricsRepo.UpdateSocialCounts(ctx, creator.UserID, totalFollowers, avgEngagement)
}
