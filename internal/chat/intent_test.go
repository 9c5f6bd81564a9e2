package chat

import "testing"

func TestExtractIntentVerbWithTime(t *testing.T) {
	intent, ok := ExtractIntent("нужно сделать отчет в 15:00")
	if !ok {
		t.Fatal("expected an intent")
	}
	if intent.Title != "отчет" {
		t.Fatalf("expected title %q, got %q", "отчет", intent.Title)
	}
	if intent.Time != "15:00" {
		t.Fatalf("expected time %q, got %q", "15:00", intent.Time)
	}
}

func TestExtractIntentVerbWithoutTime(t *testing.T) {
	intent, ok := ExtractIntent("хочу выучить Go")
	if !ok {
		t.Fatal("expected an intent")
	}
	if intent.Title != "выучить Go" {
		t.Fatalf("expected title %q, got %q", "выучить Go", intent.Title)
	}
	if intent.Time != "" {
		t.Fatalf("expected empty time, got %q", intent.Time)
	}
}

func TestExtractIntentLastVerbWins(t *testing.T) {
	intent, ok := ExtractIntent("надо запланировать встречу в 9:30")
	if !ok {
		t.Fatal("expected an intent")
	}
	if intent.Title != "встречу" {
		t.Fatalf("expected title %q, got %q", "встречу", intent.Title)
	}
	if intent.Time != "9:30" {
		t.Fatalf("expected time %q, got %q", "9:30", intent.Time)
	}
}

func TestExtractIntentCaseInsensitive(t *testing.T) {
	intent, ok := ExtractIntent("СДЕЛАТЬ уборку")
	if !ok {
		t.Fatal("expected an intent")
	}
	if intent.Title != "уборку" {
		t.Fatalf("expected title %q, got %q", "уборку", intent.Title)
	}
}

func TestExtractIntentNoVerb(t *testing.T) {
	if _, ok := ExtractIntent("как дела?"); ok {
		t.Fatal("expected no intent for small talk")
	}
	if _, ok := ExtractIntent(""); ok {
		t.Fatal("expected no intent for empty input")
	}
}

func TestCannedResponderDeterministicWithSeed(t *testing.T) {
	a := NewCannedResponder(42)
	b := NewCannedResponder(42)
	for i := 0; i < 20; i++ {
		ra, rb := a.Reply(nil), b.Reply(nil)
		if ra != rb {
			t.Fatalf("same seed must give same sequence: %q vs %q", ra, rb)
		}
	}
}

func TestCannedResponderRepliesFromFixedList(t *testing.T) {
	known := map[string]bool{}
	for _, r := range Replies() {
		known[r] = true
	}
	r := NewCannedResponder(1)
	for i := 0; i < 50; i++ {
		if reply := r.Reply(nil); !known[reply] {
			t.Fatalf("reply outside the canned list: %q", reply)
		}
	}
}
