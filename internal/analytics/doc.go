// Package analytics turns a collection of runs into streak and aggregate
// statistics.
//
// [Compute] is a pure function of its inputs: the runs and the date that is
// considered "today". It keeps no state, never fails and may be called
// concurrently on independent inputs. Every call rebuilds the snapshot from
// scratch.
//
// # Daily Goal
//
// A day counts toward a streak when the summed distance of all runs on that
// date is at least [DailyGoalMiles]. Multiple runs on one day add up.
//
// # Streaks
//
//   - Current streak: consecutive qualifying days ending today. It is zero
//     when today does not qualify yet.
//   - Longest streak: the longest chain of qualifying days anywhere in the
//     history, where each day is exactly one calendar day before the next.
//     Below-goal days are skipped rather than counted, so they only break a
//     chain by leaving a calendar gap between qualifying days.
//
// # Windows
//
// Week and month are trailing windows of 7 and 30 days ending today; the
// year window runs from January 1 through today. The trend series covers
// the same 30 days as the month window, one entry per day.
package analytics
