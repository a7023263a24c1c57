// Package service implements the business logic layer for the Biolink API.
//
// Services define their own repository interfaces so data access can be
// mocked in unit tests, take a config struct of dependencies in their
// constructor, and return sentinel errors from errors.go. Context is passed
// through every method for cancellation.
//
// GraphService is the core of the application: it owns the follow/unfollow
// toggle and is the only writer of the follow graph. Everything else is
// conventional CRUD orchestration around it.
package service
