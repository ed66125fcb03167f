// Package calendar provides a read-only client for the Google Calendar API.
//
// Events are returned as simplified EventSummary values annotated with the
// calendar they came from, so callers iterating multiple calendars can merge
// results without losing provenance.
package calendar
