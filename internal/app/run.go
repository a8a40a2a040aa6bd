package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/osmforge/internal/assembler"
	"github.com/specialistvlad/osmforge/internal/builder"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/energyplus"
	"github.com/specialistvlad/osmforge/internal/metrics"
	"github.com/specialistvlad/osmforge/internal/publish"
)

var warningCategories = []metrics.Category{
	{Label: "unsupported_type", Sentinel: builder.ErrUnsupportedType},
	{Label: "definition_not_found", Sentinel: builder.ErrDefinitionNotFound},
	{Label: "malformed_definition", Sentinel: builder.ErrMalformedDefinition},
	{Label: "unresolved_adjacency", Sentinel: assembler.ErrUnresolvedAdjacency},
	{Label: "unsupported_hvac_system", Sentinel: assembler.ErrUnsupportedHVACSystem},
	{Label: "hvac_group_conflict", Sentinel: assembler.ErrHVACGroupConflict},
}

// Run executes one assembly: every input is loaded and checked before the
// model is built, then the model is checkpointed, saved, optionally simulated
// and published. An engine failure is returned after publishing so that the
// saved model and the engine's error file still reach the bucket.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")

	a.healthCheckServer()
	defer a.closeHealthCheckServer()

	if a.config.RunEngine {
		if err := requireFile(a.config.WeatherPath, "weather file"); err != nil {
			return err
		}
	}
	library, err := a.loadLibrary(ctx)
	if err != nil {
		return err
	}
	building, err := a.loadBuilding(ctx)
	if err != nil {
		return err
	}
	designDays, err := a.loadDesignDays(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Assembling model...")
	model, report, err := assembler.New().Assemble(ctx, assembler.Input{
		Building:   building,
		Library:    library,
		DesignDays: designDays,
	})
	if err != nil {
		a.metrics.RecordAssembly(err, 0, nil)
		return fmt.Errorf("assembly failed: %w", err)
	}
	a.metrics.RecordAssembly(nil, report.Duration, map[string]int{
		"zone":        report.Zones,
		"surface":     report.Surfaces,
		"sub_surface": report.SubSurfaces,
		"hvac_system": report.HVACSystems,
		"design_day":  report.DesignDays,
	})
	a.metrics.RecordWarnings(report.Warnings, warningCategories)
	a.logger.Info("🏁 Assembly finished.",
		"objects", model.Len(),
		"zones", report.Zones,
		"surfaces", report.Surfaces,
		"adjacency_links", report.AdjacencyLinks,
		"warnings", len(report.Warnings),
		"duration", report.Duration,
	)

	if a.config.CheckpointPath != "" {
		if err := energyplus.Checkpoint(ctx, model, a.config.CheckpointPath); err != nil {
			return err
		}
	}
	if err := energyplus.Save(ctx, model, a.config.OutPath); err != nil {
		return err
	}

	artifacts := []string{a.config.OutPath}
	var engineErr error
	if a.config.RunEngine {
		result, err := a.runner.Run(ctx, energyplus.Translate(model), energyplus.RunRequest{
			ModelPath:   a.config.OutPath,
			WeatherPath: a.config.WeatherPath,
			WorkDir:     a.config.WorkDir,
		})
		if result != nil {
			a.metrics.RecordEngineRun(result.Succeeded, result.Duration)
			for _, msg := range result.Errors {
				a.logger.Warn("Engine reported an error.", "message", msg)
			}
			artifacts = append(artifacts, result.ExchangePath, result.ResultPath)
		}
		if err != nil && !errors.Is(err, energyplus.ErrEngineFailure) {
			return err
		}
		engineErr = err
	}

	if err := a.publishArtifacts(ctx, artifacts); err != nil {
		return errors.Join(engineErr, err)
	}

	a.logger.Debug("App.Run method finished.")
	return engineErr
}

// publishArtifacts uploads to the configured bucket and pre-signed URL. The
// model file alone goes to the URL.
func (a *App) publishArtifacts(ctx context.Context, files []string) error {
	if a.publisher == nil && a.config.PublishBucket != "" {
		p, err := publish.NewS3(ctx, publish.Options{
			Bucket:   a.config.PublishBucket,
			Prefix:   a.config.PublishPrefix,
			Region:   a.config.PublishRegion,
			Endpoint: a.config.PublishEndpoint,
		})
		if err != nil {
			return err
		}
		a.publisher = p
	}

	if a.publisher != nil {
		uploaded, err := a.publisher.Publish(ctx, files...)
		for range uploaded {
			a.metrics.RecordPublish(nil)
		}
		if err != nil {
			a.metrics.RecordPublish(err)
			return fmt.Errorf("failed to publish artifacts: %w", err)
		}
	}

	if a.config.PublishURL != "" {
		err := publish.UploadToURL(ctx, a.httpClient, a.config.OutPath, a.config.PublishURL)
		a.metrics.RecordPublish(err)
		if err != nil {
			return fmt.Errorf("failed to publish model: %w", err)
		}
	}
	return nil
}
