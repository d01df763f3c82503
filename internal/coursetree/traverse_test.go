package coursetree

import "testing"

func sampleCourse() *Course {
	return &Course{
		ID:    "course-1",
		Title: "Intro to Go",
		Modules: []Module{
			{
				ID:    "mod-1",
				Title: "Basics",
				Lessons: []Lesson{
					{
						ID:    "les-1",
						Title: "Syntax",
						Activities: []Activity{
							{ID: "act-1", Title: "Watch", Type: TypeVideo, BuildState: StateDraft},
							{ID: "act-2", Title: "Read", Type: TypeReading, BuildState: StateDraft},
						},
					},
					{
						ID:    "les-2",
						Title: "Types",
						Activities: []Activity{
							{ID: "act-3", Title: "Quiz", Type: TypeQuiz, BuildState: StateDraft},
						},
					},
				},
			},
			{
				ID:    "mod-2",
				Title: "Concurrency",
				Lessons: []Lesson{
					{
						ID:    "les-3",
						Title: "Goroutines",
						Activities: []Activity{
							{ID: "act-4", Title: "Lab", Type: TypeLab, BuildState: StateDraft},
						},
					},
				},
			},
		},
	}
}

func TestFlatten_DocumentOrder(t *testing.T) {
	c := sampleCourse()
	acts := Flatten(c)

	want := []string{"act-1", "act-2", "act-3", "act-4"}
	if len(acts) != len(want) {
		t.Fatalf("expected %d activities, got %d", len(want), len(acts))
	}
	for i, id := range want {
		if acts[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, acts[i].ID)
		}
	}
}

func TestFlatten_EmptyCourse(t *testing.T) {
	c := &Course{ID: "empty", Title: "Empty"}
	if acts := Flatten(c); len(acts) != 0 {
		t.Fatalf("expected no activities, got %d", len(acts))
	}
}

func TestFlatten_ReturnsPointersIntoTree(t *testing.T) {
	c := sampleCourse()
	acts := Flatten(c)

	acts[0].BuildState = StateReviewed
	if got := c.Modules[0].Lessons[0].Activities[0].BuildState; got != StateReviewed {
		t.Errorf("mutation through flatten pointer not visible in tree: %q", got)
	}
}

func TestBuildIndex_Lookup(t *testing.T) {
	x := BuildIndex(sampleCourse())

	if x.Len() != 4 {
		t.Fatalf("expected 4 activities, got %d", x.Len())
	}
	if a := x.Lookup("act-3"); a == nil || a.Title != "Quiz" {
		t.Errorf("Lookup(act-3) = %v", a)
	}
	if x.Lookup("act-gone") != nil {
		t.Error("expected nil for missing id")
	}
	if x.Has("act-gone") {
		t.Error("expected Has to be false for missing id")
	}
}

func TestBloomLevel_Order(t *testing.T) {
	if BloomRemember.Order() != 0 {
		t.Errorf("remember order = %d", BloomRemember.Order())
	}
	if BloomCreate.Order() != 5 {
		t.Errorf("create order = %d", BloomCreate.Order())
	}
	if BloomLevel("").Order() != -1 {
		t.Errorf("unset order = %d", BloomLevel("").Order())
	}
}

func TestBloomLevel_HigherOrder(t *testing.T) {
	for _, l := range []BloomLevel{BloomAnalyze, BloomEvaluate, BloomCreate} {
		if !l.HigherOrder() {
			t.Errorf("%s should be higher-order", l)
		}
	}
	for _, l := range []BloomLevel{BloomRemember, BloomUnderstand, BloomApply} {
		if l.HigherOrder() {
			t.Errorf("%s should not be higher-order", l)
		}
	}
}

func TestBuildState_Valid(t *testing.T) {
	for _, s := range AllBuildStates() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if BuildState("archived").Valid() {
		t.Error("archived should not be valid")
	}
}
