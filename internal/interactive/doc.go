// Package interactive implements the menu-driven session of numanalyzer.
//
// A Session shows the seven-entry menu, runs the chosen action, prints a
// motivational message and waits for Enter before showing the menu again.
// Menu choices come from a Selector: LineSelector reads a numbered choice
// from the input stream, TeaSelector shows a keyboard-driven bubbletea
// picker and is used when both stdin and stdout are terminals.
//
// The session ends on the Exit entry, at end of input, or when the
// context is cancelled.
package interactive
