// Package tides normalizes raw tide listings into typed events. Listings
// arrive either as lines of tag-laden feed text or as cell text lifted out of
// a day page's table; both funnel into the same Event shape, get their wall
// clock attached to a calendar date in the site's local zone, and are
// deduplicated and ordered by a Batch before anything is persisted.
package tides
