package view

import (
	"testing"
)

func TestSelector_Matching(t *testing.T) {
	type tc struct {
		sel       Selector
		matchName string
		matchTag  any
		wantName  bool
		wantTag   bool
	}

	tests := map[string]tc{
		"name selector hits its name": {
			sel:       ByName("ok"),
			matchName: "ok",
			wantName:  true,
		},
		"name selector misses other names": {
			sel:       ByName("ok"),
			matchName: "cancel",
		},
		"name selector never matches tags": {
			sel:      ByName("ok"),
			matchTag: "ok",
		},
		"tag selector compares with equality": {
			sel:      ByTag(7),
			matchTag: 7,
			wantTag:  true,
		},
		"tag selector misses other tags": {
			sel:      ByTag(7),
			matchTag: 8,
		},
		"tag selector never matches names": {
			sel:       ByTag("ok"),
			matchName: "ok",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.sel.MatchesName(tt.matchName); got != tt.wantName {
				t.Errorf("MatchesName(%q) = %v, want %v", tt.matchName, got, tt.wantName)
			}
			if got := tt.sel.MatchesTag(tt.matchTag); got != tt.wantTag {
				t.Errorf("MatchesTag(%v) = %v, want %v", tt.matchTag, got, tt.wantTag)
			}
		})
	}
}
