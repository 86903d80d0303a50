// Package rules resolves the compile-time app-placement table: matching
// a newly mapped window's WM_CLASS against the rule list to pick its
// desktop and floating state.
package rules

import (
	"strings"

	"kestrelwm/icccm"
)

// AppRule is one compile-time app-placement rule.
type AppRule struct {
	// Substring is matched against WM_CLASS's class or instance
	// component. Matching is case-sensitive: WM_CLASS components are
	// fixed-case toolkit-assigned strings, and folding case would make
	// deliberately-differently-cased rules collide.
	Substring string
	// Desktop is the target desktop index, or negative for the
	// currently selected desktop.
	Desktop  int
	Follow   bool
	Floating bool
}

// MatchAppRule returns the first rule whose substring matches either
// component of wc. First match wins.
func MatchAppRule(rules []AppRule, wc icccm.WmClass) (AppRule, bool) {
	for _, r := range rules {
		if r.Substring == "" {
			continue
		}
		if strings.Contains(wc.Class, r.Substring) || strings.Contains(wc.Instance, r.Substring) {
			return r, true
		}
	}
	return AppRule{}, false
}
