// Package listview derives the visible rows of an admin list from its
// records and filter state, and guards the list against stale fetches.
//
// A Controller keeps the full record set, the search term, the selected
// filters, and the page index. Visible rows are recomputed on every call
// from those inputs; nothing derived is cached.
//
// Fetches go through Begin and Resolve. Begin cancels the request still in
// flight and hands out a ticket; Resolve drops any result whose ticket is
// not the latest, so the last issued request always wins.
package listview
