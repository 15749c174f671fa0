// Package run defines the Run record and the parsing rules for user input.
//
// A [Run] is attributed to a calendar [Date] and a [TimeOfDay]; neither
// carries a time zone. Runs are only built through [New] (or [FromInput],
// which parses the raw form strings first), so every Run in the program
// satisfies the distance invariant:
//
//	0 < DistanceMiles <= 200
//
// # Accepted Input
//
//   - Date: "2006-01-02", "01/02/2006", "01-02-2006" (empty = today)
//   - Time: "15:04:05", "15:04", "3:04 PM", "3:04:05 PM" (empty = now)
//   - Distance: a plain decimal number such as "3.5" (required)
//
// Parse failures are reported through sentinel errors ([ErrInvalidDate],
// [ErrInvalidTime], [ErrDistanceRequired], [ErrInvalidDistance],
// [ErrDistanceRange]) so callers can match them with errors.Is.
package run
