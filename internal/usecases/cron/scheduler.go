package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/domain"
)

// Lister is the read-only slice of the repository the digest needs.
type Lister interface {
	FindAll(ctx context.Context) ([]domain.UseCase, error)
}

// Digest logs a nightly breakdown of records per status and department.
// Read-only; it never mutates data.
type Digest struct {
	repo Lister
	c    *cron.Cron
}

func NewDigest(repo Lister) *Digest {
	return &Digest{repo: repo}
}

// Start schedules the digest nightly at 12:00AM.
func (d *Digest) Start() {
	d.c = cron.New(cron.WithSeconds())

	_, err := d.c.AddFunc("0 0 0 * * *", d.run)
	if err != nil {
		log.Printf("Failed to create digest cron job: %v", err)
		return
	}

	log.Println("Digest scheduler started (running nightly at 12:00AM)")
	d.c.Start()
}

// Stop halts the scheduler. Safe to call when Start was never run.
func (d *Digest) Stop() {
	if d.c != nil {
		d.c.Stop()
	}
}

func (d *Digest) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := d.repo.FindAll(ctx)
	if err != nil {
		log.Printf("[digest] list failed err=%v", err)
		return
	}

	byStatus := make(map[domain.Status]int)
	byDepartment := make(map[domain.Department]int)
	for _, uc := range items {
		byStatus[uc.Status]++
		byDepartment[uc.Department]++
	}

	log.Printf("[digest] total=%d by_status=%v by_department=%v", len(items), byStatus, byDepartment)
}
