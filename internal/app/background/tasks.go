package background

import (
	"context"
	"log"
	"time"

	"github.com/droschke/fleet-rate-service/internal/usecase"
)

type BackgroundTasks struct {
	ReconcileUsecase usecase.ReconcileUsecase
}

func NewBackgroundTasks(reconcileUC usecase.ReconcileUsecase) *BackgroundTasks {
	return &BackgroundTasks{
		ReconcileUsecase: reconcileUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startUsageReconciler(ctx)
}

func (bt *BackgroundTasks) startUsageReconciler(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			repaired, err := bt.ReconcileUsecase.ReconcileUsage()
			if err != nil {
				log.Printf("Usage reconcile error: %v\n", err)
				continue
			}
			if repaired > 0 {
				log.Printf("Usage reconcile repaired %d records\n", repaired)
			}
		}
	}
}
