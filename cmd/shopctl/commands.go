package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"rentdesk-backend/internal/bootstrap"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
	"rentdesk-backend/internal/service"

	"github.com/spf13/cobra"
)

type cli struct {
	configPath string
	out        io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Operate the rental shop store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "config/config.dev.yaml", "Path to configuration file")

	root.AddCommand(c.seedCmd(), c.reportCmd(), c.stockCmd(), c.markOverdueCmd())
	return root
}

// withServices loads configuration, opens the store and runs fn against it.
func (c *cli) withServices(ctx context.Context, fn func(svcs *bootstrap.Services) error) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func(s repository.Store) {
		if err := s.Close(); err != nil {
			logger.Error("Failed to close store", "error", err)
		}
	}(store)

	return fn(bootstrap.NewServices(store, service.NewSystemClock(cfg.Location())))
}

func (c *cli) seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add starter customers and items to an empty shop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := bootstrap.DefaultSeed()
			if file != "" {
				var err error
				if data, err = bootstrap.LoadSeed(file); err != nil {
					return err
				}
			}
			return c.withServices(cmd.Context(), func(svcs *bootstrap.Services) error {
				seeded, err := bootstrap.Seed(cmd.Context(), svcs, data)
				if err != nil {
					return err
				}
				if !seeded {
					fmt.Fprintln(c.out, "shop already has data, nothing seeded")
					return nil
				}
				fmt.Fprintf(c.out, "seeded %d customers and %d items\n", len(data.Customers), len(data.Items))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML seed file (built-in data when empty)")
	return cmd
}

func (c *cli) reportCmd() *cobra.Command {
	var window string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the rent, sales and payment summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			windows := domain.Windows
			if window != "" {
				w, err := domain.ParseWindow(window)
				if err != nil {
					return err
				}
				windows = []domain.Window{w}
			}
			return c.withServices(cmd.Context(), func(svcs *bootstrap.Services) error {
				tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "WINDOW\tRENT\tSALES\tPAYMENTS\tDUE")
				for _, w := range windows {
					sum, err := svcs.Reports.GetReport(cmd.Context(), w)
					if err != nil {
						return err
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", sum.Window,
						sum.RentGenerated.StringFixed(2), sum.SalesRevenue.StringFixed(2),
						sum.PaymentsReceived.StringFixed(2), sum.DueFromRent.StringFixed(2))
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&window, "window", "", "today, week or month (all when empty)")
	return cmd
}

func (c *cli) stockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "List inventory with available quantities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withServices(cmd.Context(), func(svcs *bootstrap.Services) error {
				items, err := svcs.Inventory.ListInventory(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tRATE\tTOTAL\tAVAILABLE")
				for _, it := range items {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", it.ID, it.Name, it.DailyRentPrice.StringFixed(2), it.TotalQuantity, it.Available)
				}
				return tw.Flush()
			})
		},
	}
}

func (c *cli) markOverdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-overdue",
		Short: "Persist Overdue on rentals past their expected return date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withServices(cmd.Context(), func(svcs *bootstrap.Services) error {
				ids, err := svcs.Rentals.MarkOverdueRentals(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(c.out, "marked %d rentals overdue\n", len(ids))
				for _, id := range ids {
					fmt.Fprintln(c.out, id)
				}
				return nil
			})
		},
	}
}
