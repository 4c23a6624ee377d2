// Package console provides the styled terminal primitives shared by the
// interactive session and the one-shot commands: a lipgloss colour theme,
// line prompts that re-ask until the input parses, and the motivational
// messages shown after each interactive action.
package console
