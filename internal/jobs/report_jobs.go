package jobs

import (
	"context"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
)

// LogDailySummary writes today's figures and the dashboard counters to the log
func (jr *JobRunner) LogDailySummary() bool {
	return jr.runWithRecovery("LogDailySummary", func(ctx context.Context) error {
		report, err := jr.services.Report.GetReport(ctx, domain.WindowToday)
		if err != nil {
			return err
		}
		stats, err := jr.services.Report.GetDashboard(ctx)
		if err != nil {
			return err
		}

		logger.Info("Daily summary",
			"rent_generated", report.RentGenerated.StringFixed(2),
			"sales_revenue", report.SalesRevenue.StringFixed(2),
			"payments_received", report.PaymentsReceived.StringFixed(2),
			"due_from_rent", report.DueFromRent.StringFixed(2),
			"items_rented", stats.ItemsRented,
			"overdue_rentals", stats.OverdueCount)
		return nil
	})
}
