// Package schedule runs batch loads periodically on cron schedules.
//
// A Runner pairs a batch Loader with one or more cron entries. Each
// entry names a fixed task list that is re-loaded every time the
// schedule fires, with the run's results handed to a callback.
//
// Basic usage:
//
//	pool := batch.New(6)
//
//	runner, err := schedule.NewRunner(schedule.Config{Loader: pool})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = runner.Add("health", "@every 30s", urls, func(results []batch.Result) {
//		for _, r := range results {
//			if r.Err != nil {
//				log.Printf("probe %s failed: %v", r.Task, r.Err)
//			}
//		}
//	})
//
//	runner.Start()
//	defer runner.Stop()
//
// Expressions use the standard five-field cron format plus the usual
// descriptors ("@hourly", "@daily", "@every 90s").
package schedule
