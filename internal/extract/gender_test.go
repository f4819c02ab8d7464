package extract

import "testing"

func TestGenderStrategies(t *testing.T) {
	strategies := GenderStrategies()
	if len(strategies) != 3 {
		t.Fatalf("expected 3 strategies, got %d", len(strategies))
	}
	labeled, standalone, bare := strategies[0], strategies[1], strategies[2]

	if got := runStrategy(t, labeled, "Gender: Male"); len(got) != 1 || got[0] != "Male" {
		t.Errorf("labeled: %v", got)
	}
	if got := runStrategy(t, labeled, "Sex Female"); len(got) != 1 || got[0] != "Female" {
		t.Errorf("labeled sex: %v", got)
	}
	if got := runStrategy(t, labeled, "Male"); got != nil {
		t.Errorf("labeled must require a label: %v", got)
	}

	if got := runStrategy(t, standalone, "xxx\nFemale\nyyy"); len(got) != 1 || got[0] != "Female" {
		t.Errorf("standalone: %v", got)
	}

	if got := runStrategy(t, bare, "the male heir"); len(got) != 1 {
		t.Errorf("bare word-boundary match expected: %v", got)
	}
	// "KAMALESH" embeds "MALE" mid-token; word boundaries must hold.
	if got := runStrategy(t, bare, "KAMALESH"); got != nil {
		t.Errorf("mid-token match must not fire: %v", got)
	}
}
