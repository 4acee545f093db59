// Package web serves the form front-end for the video catalog.
//
// The server renders plain HTML pages from templates compiled at
// construction time and talks to the catalog through
// services.CatalogService. Routes:
//
//	GET  /                   index: upload form plus the video table,
//	                         optionally filtered by the q query parameter
//	POST /upload             create a record from the form fields, then
//	                         redirect back to the index
//	GET  /videos/{id}        detail page for one record
//	POST /videos/{id}/delete remove a record, then redirect to the index
//
// Mutations are plain form POSTs followed by a 303 redirect, so a
// browser refresh never replays an upload or a delete. Every request is
// tagged with a generated request id and logged with its method, path,
// status and duration.
package web
