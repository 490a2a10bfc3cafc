// Package bootstrap runs the module's command-line programs.
//
// It validates a typed configuration, builds the logger, installs telemetry
// when an exporter endpoint is configured, and runs one task under a context
// cancelled on SIGINT or SIGTERM. Stop hooks flush telemetry and close the log
// file whether the task succeeds or not.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	return app.RunTask(ctx, run)
package bootstrap
