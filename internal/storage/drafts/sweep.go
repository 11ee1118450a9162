package drafts

import (
	"context"
	"log/slog"
	"strconv"
	"time"
)

// Sweep deletes drafts older than maxAge every interval until ctx is done
func Sweep(ctx context.Context, repo Repository, maxAge, interval time.Duration, l *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := repo.DeleteStale(ctx, now.Add(-maxAge))
			if err != nil {
				l.ErrorContext(ctx, "Failed to delete stale drafts: "+err.Error())
				continue
			}

			if n > 0 {
				l.InfoContext(ctx, "Deleted "+strconv.FormatInt(n, 10)+" stale drafts")
			}
		}
	}
}
