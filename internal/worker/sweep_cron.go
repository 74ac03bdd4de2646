package worker

// sweep_cron.go
// Background goroutine that periodically scans contactos with a pending
// follow-up reminder due today or earlier and enqueues one reminder job per
// contacto. A redis SETNX mark per (contacto, fecha) keeps the sweep
// idempotent across ticks and instances.

import (
	"context"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	sweepTickInterval = 1 * time.Hour
	sweepMarkTTL      = 48 * time.Hour
)

// SweepCronConfig holds all dependencies for the sweep goroutine.
type SweepCronConfig struct {
	Contactos  repository.ContactoRepository
	Profiles   repository.ProfileRepository
	Dispatcher *Dispatcher
	RDB        *redis.Client
}

// StartSweepCron launches a background goroutine that ticks hourly, finds due
// follow-ups and enqueues reminder jobs. It runs one sweep immediately on
// startup and respects the context for graceful shutdown.
func StartSweepCron(ctx context.Context, cfg SweepCronConfig) {
	go func() {
		ticker := time.NewTicker(sweepTickInterval)
		defer ticker.Stop()

		log.Info().Msg("sweep_cron: started")
		processSweep(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("sweep_cron: shutting down")
				return
			case <-ticker.C:
				processSweep(ctx, cfg)
			}
		}
	}()
}

func processSweep(ctx context.Context, cfg SweepCronConfig) {
	hoy := time.Now().UTC().Truncate(24 * time.Hour)

	contactos, err := cfg.Contactos.ListConSeguimientoVencido(ctx, hoy)
	if err != nil {
		log.Error().Err(err).Msg("sweep_cron: query failed")
		return
	}
	if len(contactos) == 0 {
		return
	}

	enqueued := 0
	for _, contacto := range contactos {
		fecha := hoy
		if contacto.SeguimientoFecha != nil {
			fecha = *contacto.SeguimientoFecha
		}

		markKey := "recordatorio:" + contacto.ID.String() + ":" + fecha.Format("2006-01-02")
		set, err := cfg.RDB.SetNX(ctx, markKey, 1, sweepMarkTTL).Result()
		if err != nil {
			log.Error().Err(err).Str("contacto_id", contacto.ID.String()).Msg("sweep_cron: mark failed")
			continue
		}
		if !set {
			continue // already enqueued on a previous tick
		}

		vendedor, err := cfg.Profiles.FindByID(ctx, contacto.UserID)
		if err != nil {
			log.Warn().Str("user_id", contacto.UserID.String()).Msg("sweep_cron: vendedor sin perfil")
			continue
		}

		nombre := contacto.Nombre
		if contacto.Apellido != nil {
			nombre += " " + *contacto.Apellido
		}
		payload := RecordatorioPayload{
			VendedorEmail:  vendedor.Email,
			ContactoNombre: nombre,
			ContactoTel:    contacto.Telefono,
			Fecha:          fecha.Format("2006-01-02"),
			Prioridad:      contacto.SeguimientoPrioridad,
		}
		if err := cfg.Dispatcher.EnqueueRecordatorio(ctx, payload); err != nil {
			log.Error().Err(err).Str("contacto_id", contacto.ID.String()).Msg("sweep_cron: enqueue failed")
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		log.Info().Int("enqueued", enqueued).Msg("sweep_cron: recordatorios encolados")
	}
}
