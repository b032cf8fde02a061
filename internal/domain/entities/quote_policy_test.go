package entities

import "testing"

func TestQuotePolicies(t *testing.T) {
	owner := Actor{UserID: "u-1"}
	other := Actor{UserID: "u-2"}
	anon := Actor{}
	draft := Quote{ID: "q-1", UserID: "u-1", Status: QuoteStatusDraft}
	final := Quote{ID: "q-1", UserID: "u-1", Status: QuoteStatusFinalized}

	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"owner reads draft", CanReadQuote(owner, draft), true},
		{"owner reads finalized", CanReadQuote(owner, final), true},
		{"other reads draft", CanReadQuote(other, draft), false},
		{"anonymous reads", CanReadQuote(anon, draft), false},
		{"admin reads finalized", CanReadQuote(SystemActor, final), true},
		{"owner writes draft", CanWriteQuote(owner, draft), true},
		{"owner writes finalized", CanWriteQuote(owner, final), false},
		{"other writes draft", CanWriteQuote(other, draft), false},
		{"admin writes finalized", CanWriteQuote(SystemActor, final), true},
		{"owner inserts draft", CanInsertQuote(owner, draft), true},
		{"owner inserts finalized", CanInsertQuote(owner, final), false},
		{"owner inserts for other", CanInsertQuote(other, draft), false},
		{"owner deletes", CanDeleteQuote(owner, draft), false},
		{"admin deletes", CanDeleteQuote(SystemActor, final), true},
		{"owner finalizes", CanFinalizeQuote(owner, draft), false},
		{"admin finalizes draft", CanFinalizeQuote(SystemActor, draft), true},
		{"admin finalizes twice", CanFinalizeQuote(SystemActor, final), false},
		{"owner item write draft", CanWriteQuoteItem(owner, draft), true},
		{"owner item write finalized", CanWriteQuoteItem(owner, final), false},
		{"owner item read finalized", CanReadQuoteItem(owner, final), true},
		{"owner item delete", CanDeleteQuoteItem(owner, draft), false},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, tc.got)
		}
	}
}

func TestAttributionTypeValid(t *testing.T) {
	if !AttributionType("").Valid() {
		t.Fatalf("empty type should be valid (null)")
	}
	if !AttributionTypeTrademark.Valid() {
		t.Fatalf("trademark should be valid")
	}
	if AttributionType("tm_search").Valid() {
		t.Fatalf("unknown type should be invalid")
	}
	if got := NormalizeAttributionType("  Patent "); got != AttributionTypePatent {
		t.Fatalf("expected patent, got %q", got)
	}
}
