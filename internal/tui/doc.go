// Package tui is the interactive runlog session.
//
// It is a single bubbletea program with four screens: Quick Entry, the run
// list, analytics and help. Storage calls run as commands whose results
// arrive back as messages, so Update never blocks on the database.
//
// # Keys
//
// Esc enters navigation mode; the next key picks a screen (1, 2, 3), opens
// help (h, ?) or quits (q). A second Esc on Quick Entry clears the form.
// Ctrl+Q and Ctrl+C quit from anywhere, and q quits on every screen except
// Quick Entry, where it is ordinary input.
package tui
