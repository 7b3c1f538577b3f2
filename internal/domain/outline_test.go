package domain

import "testing"

func collectIDs(o *Outline) map[string]int {
	ids := make(map[string]int)
	for _, g := range GroupOrder {
		for _, sec := range o.Groups[g] {
			ids[sec.ID]++
		}
	}
	return ids
}

func TestAddSection_Defaults(t *testing.T) {
	o := NewOutline()

	sec := o.AddSection(GroupMainContent)
	if sec == nil {
		t.Fatal("expected a section")
	}
	if sec.ID == "" {
		t.Error("expected a generated id")
	}
	if sec.HeadingLevel != DefaultHeadingLevel {
		t.Errorf("expected level %s, got %s", DefaultHeadingLevel, sec.HeadingLevel)
	}
	if sec.AnswerType != AnswerTypeAuto {
		t.Errorf("expected answer type %s, got %s", AnswerTypeAuto, sec.AnswerType)
	}
	if sec.AnswerLength != AnswerLengthMedium {
		t.Errorf("expected answer length %s, got %s", AnswerLengthMedium, sec.AnswerLength)
	}
	if sec.Locked {
		t.Error("new sections start unlocked")
	}

	if o.AddSection(GroupName("Bogus")) != nil {
		t.Error("unknown group must not create a section")
	}
}

func TestInsertSectionAfter_ClampsIndex(t *testing.T) {
	o := NewOutline()
	a := o.AddSection(GroupMainContent)
	b := o.AddSection(GroupMainContent)

	mid := o.InsertSectionAfter(GroupMainContent, 0)
	list := o.Groups[GroupMainContent]
	if len(list) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(list))
	}
	if list[0] != a || list[1] != mid || list[2] != b {
		t.Error("expected insert between a and b")
	}

	head := o.InsertSectionAfter(GroupMainContent, -10)
	if o.Groups[GroupMainContent][0] != head {
		t.Error("expected far-negative index to insert at the head")
	}

	tail := o.InsertSectionAfter(GroupMainContent, 99)
	list = o.Groups[GroupMainContent]
	if list[len(list)-1] != tail {
		t.Error("expected far-positive index to append at the tail")
	}
}

func TestRemoveSection_OutOfRangeIsNoOp(t *testing.T) {
	o := NewOutline()
	o.AddSection(GroupMainContent)

	o.RemoveSection(GroupMainContent, 5)
	o.RemoveSection(GroupMainContent, -1)
	if len(o.Groups[GroupMainContent]) != 1 {
		t.Fatal("out-of-range remove must not change the group")
	}

	o.RemoveSection(GroupMainContent, 0)
	if len(o.Groups[GroupMainContent]) != 0 {
		t.Fatal("expected the section to be removed")
	}
}

func TestMoveSection_SwapsAndClamps(t *testing.T) {
	o := NewOutline()
	a := o.AddSection(GroupMainContent)
	b := o.AddSection(GroupMainContent)
	c := o.AddSection(GroupMainContent)

	o.MoveSection(GroupMainContent, 0, 1)
	list := o.Groups[GroupMainContent]
	if list[0] != b || list[1] != a || list[2] != c {
		t.Error("expected a and b to swap")
	}

	// Clamped at the tail: swapping the last section downward is a no-op.
	o.MoveSection(GroupMainContent, 2, 5)
	if o.Groups[GroupMainContent][2] != c {
		t.Error("expected clamp to keep c in place")
	}

	o.MoveSection(GroupMainContent, 0, -1)
	if o.Groups[GroupMainContent][0] != b {
		t.Error("expected clamp to keep b in place")
	}
}

func TestRelocateSection_PreservesIdentity(t *testing.T) {
	o := NewOutline()
	sec := o.AddSection(GroupMainContent)
	sec.HeadingName = "Intro"
	id := sec.ID

	o.RelocateSection(GroupMainContent, 0, GroupSupplementaryContent)

	if len(o.Groups[GroupMainContent]) != 0 {
		t.Error("expected the section to leave its old group")
	}
	moved := o.Groups[GroupSupplementaryContent]
	if len(moved) != 1 {
		t.Fatal("expected the section in its new group")
	}
	if moved[0].ID != id || moved[0].HeadingName != "Intro" {
		t.Error("relocation must keep id and field values")
	}
	if moved[0].Group != GroupSupplementaryContent {
		t.Error("expected group field to follow the section")
	}

	// Same group is a no-op.
	o.RelocateSection(GroupSupplementaryContent, 0, GroupSupplementaryContent)
	if len(o.Groups[GroupSupplementaryContent]) != 1 {
		t.Error("same-group relocation must not change anything")
	}
}

func TestReorderGroup_DropsUnknownIds(t *testing.T) {
	o := NewOutline()
	a := o.AddSection(GroupMainContent)
	b := o.AddSection(GroupMainContent)
	c := o.AddSection(GroupMainContent)

	o.ReorderGroup(GroupMainContent, []string{c.ID, "not-a-real-id", a.ID})

	list := o.Groups[GroupMainContent]
	if len(list) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(list))
	}
	if list[0] != c || list[1] != a {
		t.Error("expected order c, a")
	}
	_ = b // b was absent from the order and is dropped
}

func TestIDStability_AcrossReordering(t *testing.T) {
	o := NewOutline()
	for i := 0; i < 4; i++ {
		o.AddSection(GroupMainContent)
	}
	o.AddSection(GroupContextualBorder)
	before := collectIDs(o)

	o.MoveSection(GroupMainContent, 0, 1)
	o.MoveSection(GroupMainContent, 3, -2)
	o.RelocateSection(GroupMainContent, 1, GroupContextualBorder)
	o.InsertSectionAfter(GroupContextualBorder, 0)

	after := collectIDs(o)
	for id, n := range after {
		if n != 1 {
			t.Errorf("id %s appears %d times", id, n)
		}
	}
	for id := range before {
		if after[id] != 1 {
			t.Errorf("id %s was lost", id)
		}
	}
}

func TestChangeHeadingLevel(t *testing.T) {
	o := NewOutline()
	sec := o.AddSection(GroupMainContent)

	o.ChangeHeadingLevel(GroupMainContent, 0, LevelRaise)
	if sec.HeadingLevel != HeadingLevelH2 {
		t.Errorf("expected H2, got %s", sec.HeadingLevel)
	}

	// Clamped at the shallowest rank.
	o.ChangeHeadingLevel(GroupMainContent, 0, LevelRaise)
	if sec.HeadingLevel != HeadingLevelH2 {
		t.Errorf("expected clamp at H2, got %s", sec.HeadingLevel)
	}

	for i := 0; i < 10; i++ {
		o.ChangeHeadingLevel(GroupMainContent, 0, LevelLower)
	}
	if sec.HeadingLevel != HeadingLevelH6 {
		t.Errorf("expected clamp at H6, got %s", sec.HeadingLevel)
	}

	o.ChangeHeadingLevel(GroupMainContent, 0, LevelReset)
	if sec.HeadingLevel != DefaultHeadingLevel {
		t.Errorf("expected reset to %s, got %s", DefaultHeadingLevel, sec.HeadingLevel)
	}
}

func TestUpdateSection_IgnoresLock(t *testing.T) {
	o := NewOutline()
	sec := o.AddSection(GroupMainContent)
	locked := true
	o.UpdateSection(GroupMainContent, 0, &UpdateSectionRequest{Locked: &locked})

	name := "Edited while locked"
	if o.UpdateSection(GroupMainContent, 0, &UpdateSectionRequest{HeadingName: &name}) == nil {
		t.Fatal("expected update to succeed")
	}
	if sec.HeadingName != name {
		t.Error("user edits must go through on locked sections")
	}

	if o.UpdateSection(GroupMainContent, 9, &UpdateSectionRequest{HeadingName: &name}) != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestSnapshot_ReflectsLatestEdits(t *testing.T) {
	o := NewOutline()
	o.AddSection(GroupMainContent)
	name := "Intro"
	o.UpdateSection(GroupMainContent, 0, &UpdateSectionRequest{HeadingName: &name})

	snap := o.Snapshot()
	if snap.Groups[GroupMainContent][0].HeadingName != "Intro" {
		t.Fatal("snapshot must reflect the latest field edits")
	}

	// Later mutations must not bleed into a snapshot taken earlier.
	changed := "Changed"
	o.UpdateSection(GroupMainContent, 0, &UpdateSectionRequest{HeadingName: &changed})
	if snap.Groups[GroupMainContent][0].HeadingName != "Intro" {
		t.Error("snapshot must be a copy, not a view")
	}
}

func TestUpdateTitle_TracksUserSeed(t *testing.T) {
	o := NewOutline()

	empty := ""
	o.UpdateTitle(&UpdateTitleRequest{Text: &empty})
	if o.Title.UserSet {
		t.Error("empty text does not count as a user-provided title")
	}

	text := "Widgets 101"
	o.UpdateTitle(&UpdateTitleRequest{Text: &text})
	if !o.Title.UserSet {
		t.Error("non-empty text marks the title as user-provided")
	}

	locked := true
	o.UpdateTitle(&UpdateTitleRequest{Locked: &locked})
	if !o.Title.Locked || o.Title.Text != "Widgets 101" {
		t.Error("lock update must not touch the text")
	}
}
