// Package bootstrap runs a blogkit binary's lifecycle around a finite task.
//
// NewApp applies defaults to and validates a typed config, initializes the
// logger and creates a component registry. RunTask starts the registered
// components, runs the task with SIGINT/SIGTERM cancellation and stops the
// components again in reverse order, whatever the task returned.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	app.RegisterComponent(observability.NewComponent(cfg.Telemetry))
//	return app.RunTask(ctx, func(ctx context.Context) error {
//	    return listArticles(ctx)
//	})
package bootstrap
