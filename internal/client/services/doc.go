// Package services contains the application services of the emergency15
// client. They validate input, call the backend through api.Client and
// drive the session state machine with the results.
package services
