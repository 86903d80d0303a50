package rules

import (
	"testing"

	"kestrelwm/icccm"
)

func TestMatchAppRuleFirstWins(t *testing.T) {
	table := []AppRule{
		{Substring: "Gimp", Desktop: 2, Floating: true},
		{Substring: "firefox", Desktop: 1},
	}
	rule, ok := MatchAppRule(table, icccm.WmClass{Instance: "gimp", Class: "Gimp"})
	if !ok || rule.Desktop != 2 {
		t.Fatalf("expected Gimp rule to match, got %+v ok=%v", rule, ok)
	}
}

func TestMatchAppRuleCaseSensitive(t *testing.T) {
	table := []AppRule{{Substring: "Gimp", Desktop: 2}}
	_, ok := MatchAppRule(table, icccm.WmClass{Instance: "gimp", Class: "gimp"})
	if ok {
		t.Fatalf("expected case-sensitive match to reject lowercase class against capitalized rule")
	}
}

func TestMatchAppRuleInstanceOrClass(t *testing.T) {
	table := []AppRule{{Substring: "xterm", Desktop: 3}}
	rule, ok := MatchAppRule(table, icccm.WmClass{Instance: "xterm", Class: "XTerm"})
	if !ok || rule.Desktop != 3 {
		t.Fatalf("expected instance-component match to win, got %+v ok=%v", rule, ok)
	}
}

func TestMatchAppRuleNoMatch(t *testing.T) {
	table := []AppRule{{Substring: "Gimp", Desktop: 2}}
	_, ok := MatchAppRule(table, icccm.WmClass{Instance: "xterm", Class: "XTerm"})
	if ok {
		t.Fatalf("expected no match")
	}
}
