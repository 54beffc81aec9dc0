package main

import (
	"context"
	"encoding/json"
	"io"

	"marketplace/config"
	"marketplace/internal/errors"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

// directory is the read side of the use cases the commands need.
type directory struct {
	fx.In

	Targeting    usecase.TargetingUsecase
	AccessRights usecase.AccessRightsUsecase
	Business     usecase.BusinessUsecase
}

// withDirectory starts a minimal container over the configured database, runs fn and stops it.
func withDirectory(ctx context.Context, fn func(directory) error) error {
	var dir directory

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewBusinessRepository,
			fx.Annotate(impl.NewTargetingService, fx.ParamTags(``, `optional:"true"`)),
			fx.Annotate(impl.NewAccessRightsService, fx.ParamTags(``, `optional:"true"`)),
			impl.NewBusinessService,
		),
		fx.Populate(&dir),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to connect to the business directory")
	}
	defer func() { _ = app.Stop(context.WithoutCancel(ctx)) }()

	return fn(dir)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
