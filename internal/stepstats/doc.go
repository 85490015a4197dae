// Package stepstats turns a day-count series into calendar period summaries
// and goal streaks.
//
// Every function is pure: it reads the series it is given, never mutates it,
// and keeps no state between calls, so it can be used from any goroutine as
// long as the caller does not write to the series during the call. Calendar
// math is done in the location of the reference time, which callers set to
// the user's time zone.
package stepstats
