package jobs

import (
	"context"

	"rentdesk-backend/internal/logger"
)

// MarkOverdueRentals persists Overdue for rentals whose expected return day has passed
func (jr *JobRunner) MarkOverdueRentals() bool {
	return jr.runWithRecovery("MarkOverdueRentals", func(ctx context.Context) error {
		ids, err := jr.services.Rental.MarkOverdueRentals(ctx)
		if err != nil {
			return err
		}

		logger.Info("Marked rentals as overdue", "count", len(ids))
		for _, id := range ids {
			logger.Debug("Marked rental as overdue", "rental_id", id)
		}
		return nil
	})
}
