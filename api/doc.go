// Package api exposes the document pipeline over HTTP.
//
// Endpoints cover job submission, status and progress queries,
// cancellation, on-demand quality assessment, and the human-review queue.
// Failures use a uniform envelope, {success: false, error: {code, message}},
// with validation mapping to 400, unknown resources to 404, illegal state
// changes to 409, and everything else to 500.
package api
