package main

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"field-mapper/internal/api"
	"field-mapper/internal/plan"
	"field-mapper/internal/transform"
)

func newServeCmd(v *viper.Viper, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mapping API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlag(keyAddr, cmd.Flags().Lookup(keyAddr)); err != nil {
				return err
			}

			if !*verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			config := plan.DefaultConfig()
			config.Threshold = v.GetFloat64(keyThreshold)

			mapper := plan.NewAutoMapper(config, plan.WithLogger(log.Logger))
			router := api.NewRouter(mapper, transform.NewRegistry())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return api.Run(ctx, v.GetString(keyAddr), router)
		},
	}

	cmd.Flags().String(keyAddr, ":8080", "Listen address")

	return cmd
}

