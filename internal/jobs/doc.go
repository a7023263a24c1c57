// Package jobs implements background job processing for the Biolink API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Available Jobs
//
//   - ViewsResetProcessor: zeroes the site-wide daily view counter at
//     midnight UTC
//
// # Lifecycle
//
// Jobs expose Start and Stop and manage their own goroutine:
//
//	job := jobs.NewViewsResetProcessor(metaRepo)
//	job.Start()
//	defer job.Stop()
package jobs
