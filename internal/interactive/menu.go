package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/numanalyzer/internal/console"
)

// Choice identifies a menu entry.
type Choice int

// Menu entries in display order.
const (
	ChoiceInvalid Choice = iota
	ChoiceAnalyze
	ChoicePrime
	ChoiceArmstrong
	ChoicePerfect
	ChoicePrimeRange
	ChoiceGCD
	ChoiceExit
)

// MenuItem is one line of the menu.
type MenuItem struct {
	Choice Choice
	Title  string
}

// Key returns the text typed to select the item ("1" to "7").
func (m MenuItem) Key() string {
	return strconv.Itoa(int(m.Choice))
}

// Menu lists every entry.
var Menu = []MenuItem{
	{Choice: ChoiceAnalyze, Title: "Comprehensive Number Analysis"},
	{Choice: ChoicePrime, Title: "Check Prime Number"},
	{Choice: ChoiceArmstrong, Title: "Check Armstrong Number"},
	{Choice: ChoicePerfect, Title: "Check Perfect Number"},
	{Choice: ChoicePrimeRange, Title: "Find All Primes in Range"},
	{Choice: ChoiceGCD, Title: "GCD & LCM Calculator"},
	{Choice: ChoiceExit, Title: "Exit"},
}

const (
	menuTitle  = "================= NUMBER ANALYZER: EXPERT EDITION ================="
	menuFooter = "===================================================================="
)

// ParseChoice maps typed text to a Choice. Anything other than the digits
// 1 to 7, after trimming, is ChoiceInvalid.
func ParseChoice(s string) Choice {
	s = strings.TrimSpace(s)
	for _, item := range Menu {
		if item.Key() == s {
			return item.Choice
		}
	}
	return ChoiceInvalid
}

// renderMenu returns the numbered menu block.
func renderMenu(theme *console.Theme) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Banner(menuTitle))
	b.WriteString("\n\n")
	for _, item := range Menu {
		fmt.Fprintf(&b, "  %s. %s\n", item.Key(), item.Title)
	}
	b.WriteString("\n")
	b.WriteString(theme.Banner(menuFooter))
	b.WriteString("\n")

	return b.String()
}
