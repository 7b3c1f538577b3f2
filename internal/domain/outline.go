package domain

import "github.com/google/uuid"

type GroupName string

const (
	GroupMainContent          GroupName = "MainContent"
	GroupContextualBorder     GroupName = "ContextualBorder"
	GroupSupplementaryContent GroupName = "SupplementaryContent"
)

// GroupOrder is the canonical display and export order.
var GroupOrder = []GroupName{
	GroupMainContent,
	GroupContextualBorder,
	GroupSupplementaryContent,
}

func (g GroupName) Valid() bool {
	for _, known := range GroupOrder {
		if g == known {
			return true
		}
	}
	return false
}

type HeadingLevel string

const (
	HeadingLevelH2 HeadingLevel = "H2"
	HeadingLevelH3 HeadingLevel = "H3"
	HeadingLevelH4 HeadingLevel = "H4"
	HeadingLevelH5 HeadingLevel = "H5"
	HeadingLevelH6 HeadingLevel = "H6"
)

// DefaultHeadingLevel is the level new sections start at and the target of a
// level reset.
const DefaultHeadingLevel = HeadingLevelH3

var headingRanks = []HeadingLevel{
	HeadingLevelH2,
	HeadingLevelH3,
	HeadingLevelH4,
	HeadingLevelH5,
	HeadingLevelH6,
}

func (l HeadingLevel) Valid() bool {
	return l.rank() >= 0
}

func (l HeadingLevel) rank() int {
	for i, r := range headingRanks {
		if l == r {
			return i
		}
	}
	return -1
}

// Raise moves one rank toward H2, clamped.
func (l HeadingLevel) Raise() HeadingLevel {
	if r := l.rank(); r > 0 {
		return headingRanks[r-1]
	}
	return l
}

// Lower moves one rank toward H6, clamped.
func (l HeadingLevel) Lower() HeadingLevel {
	if r := l.rank(); r >= 0 && r < len(headingRanks)-1 {
		return headingRanks[r+1]
	}
	return l
}

type AnswerType string

const (
	AnswerTypeAuto AnswerType = "Auto"
	AnswerTypeEDA  AnswerType = "EDA"
	AnswerTypeDDA  AnswerType = "DDA"
	AnswerTypeLLD  AnswerType = "L+LD"
	AnswerTypeSLLD AnswerType = "S+L+LD"
	AnswerTypeEOE  AnswerType = "EOE"
)

func (t AnswerType) Valid() bool {
	switch t {
	case AnswerTypeAuto, AnswerTypeEDA, AnswerTypeDDA, AnswerTypeLLD, AnswerTypeSLLD, AnswerTypeEOE:
		return true
	}
	return false
}

type AnswerLength string

const (
	AnswerLengthSmall  AnswerLength = "Small"
	AnswerLengthMedium AnswerLength = "Medium"
	AnswerLengthLarge  AnswerLength = "Large"
)

func (l AnswerLength) Valid() bool {
	switch l {
	case AnswerLengthSmall, AnswerLengthMedium, AnswerLengthLarge:
		return true
	}
	return false
}

type LevelDirection string

const (
	LevelRaise LevelDirection = "raise"
	LevelLower LevelDirection = "lower"
	LevelReset LevelDirection = "reset"
)

type Title struct {
	Text   string `json:"text"`
	Locked bool   `json:"locked"`
	// UserSet records whether the user has typed any non-empty title text
	// this session. A server-seeded title does not count.
	UserSet bool `json:"-"`
}

type Section struct {
	ID                string       `json:"id"`
	Group             GroupName    `json:"group"`
	HeadingLevel      HeadingLevel `json:"heading_level"`
	HeadingName       string       `json:"heading_name"`
	Description       string       `json:"description"`
	AnswerType        AnswerType   `json:"answer_type"`
	AnswerLength      AnswerLength `json:"answer_length"`
	Locked            bool         `json:"locked"`
	GenerateFollowing bool         `json:"generate_following"`
}

// Outline is the root aggregate: one per session, never shared.
type Outline struct {
	Title  Title
	Groups map[GroupName][]*Section
}

func NewOutline() *Outline {
	groups := make(map[GroupName][]*Section, len(GroupOrder))
	for _, g := range GroupOrder {
		groups[g] = []*Section{}
	}
	return &Outline{Groups: groups}
}

// NewSection builds a section with default field values and a fresh id.
func NewSection(group GroupName) *Section {
	return &Section{
		ID:           uuid.New().String(),
		Group:        group,
		HeadingLevel: DefaultHeadingLevel,
		AnswerType:   AnswerTypeAuto,
		AnswerLength: AnswerLengthMedium,
	}
}

func (o *Outline) AddSection(group GroupName) *Section {
	if !group.Valid() {
		return nil
	}
	sec := NewSection(group)
	o.Groups[group] = append(o.Groups[group], sec)
	return sec
}

// InsertSectionAfter inserts a new default section immediately after index.
// An out-of-range index is clamped, so the insert never fails.
func (o *Outline) InsertSectionAfter(group GroupName, index int) *Section {
	if !group.Valid() {
		return nil
	}
	list := o.Groups[group]
	pos := index + 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(list) {
		pos = len(list)
	}
	sec := NewSection(group)
	list = append(list, nil)
	copy(list[pos+1:], list[pos:])
	list[pos] = sec
	o.Groups[group] = list
	return sec
}

// RemoveSection is a no-op for out-of-range indexes: the UI may hand us an
// index that went stale one frame ago.
func (o *Outline) RemoveSection(group GroupName, index int) {
	list := o.Groups[group]
	if index < 0 || index >= len(list) {
		return
	}
	o.Groups[group] = append(list[:index], list[index+1:]...)
}

// MoveSection swaps the section at index with the one delta positions away,
// clamping the target inside the group.
func (o *Outline) MoveSection(group GroupName, index, delta int) {
	list := o.Groups[group]
	if index < 0 || index >= len(list) {
		return
	}
	target := index + delta
	if target < 0 {
		target = 0
	}
	if target > len(list)-1 {
		target = len(list) - 1
	}
	if target == index {
		return
	}
	list[index], list[target] = list[target], list[index]
}

// RelocateSection removes the section from one group and appends it to the
// end of another, keeping its id and field values.
func (o *Outline) RelocateSection(from GroupName, index int, to GroupName) {
	if from == to || !to.Valid() {
		return
	}
	list := o.Groups[from]
	if index < 0 || index >= len(list) {
		return
	}
	sec := list[index]
	o.Groups[from] = append(list[:index], list[index+1:]...)
	sec.Group = to
	o.Groups[to] = append(o.Groups[to], sec)
}

// ReorderGroup rewrites a group's order to match order. Unknown ids in order
// are ignored and current ids missing from order are dropped, so a stale
// drag payload cannot corrupt the group.
func (o *Outline) ReorderGroup(group GroupName, order []string) {
	list := o.Groups[group]
	byID := make(map[string]*Section, len(list))
	for _, sec := range list {
		byID[sec.ID] = sec
	}
	next := make([]*Section, 0, len(list))
	for _, id := range order {
		if sec, ok := byID[id]; ok {
			next = append(next, sec)
			delete(byID, id)
		}
	}
	o.Groups[group] = next
}

func (o *Outline) ChangeHeadingLevel(group GroupName, index int, direction LevelDirection) {
	list := o.Groups[group]
	if index < 0 || index >= len(list) {
		return
	}
	sec := list[index]
	switch direction {
	case LevelRaise:
		sec.HeadingLevel = sec.HeadingLevel.Raise()
	case LevelLower:
		sec.HeadingLevel = sec.HeadingLevel.Lower()
	case LevelReset:
		sec.HeadingLevel = DefaultHeadingLevel
	}
}

// UpdateSection applies direct user edits to the section at index. The lock
// flag only gates reconciliation overwrites, never user edits.
func (o *Outline) UpdateSection(group GroupName, index int, req *UpdateSectionRequest) *Section {
	list := o.Groups[group]
	if index < 0 || index >= len(list) {
		return nil
	}
	sec := list[index]
	if req.HeadingName != nil {
		sec.HeadingName = *req.HeadingName
	}
	if req.Description != nil {
		sec.Description = *req.Description
	}
	if req.HeadingLevel != nil {
		sec.HeadingLevel = *req.HeadingLevel
	}
	if req.AnswerType != nil {
		sec.AnswerType = *req.AnswerType
	}
	if req.AnswerLength != nil {
		sec.AnswerLength = *req.AnswerLength
	}
	if req.Locked != nil {
		sec.Locked = *req.Locked
	}
	if req.GenerateFollowing != nil {
		sec.GenerateFollowing = *req.GenerateFollowing
	}
	return sec
}

func (o *Outline) UpdateTitle(req *UpdateTitleRequest) {
	if req.Text != nil {
		o.Title.Text = *req.Text
		if *req.Text != "" {
			o.Title.UserSet = true
		}
	}
	if req.Locked != nil {
		o.Title.Locked = *req.Locked
	}
}

// SectionCount returns the total number of sections across all groups.
func (o *Outline) SectionCount() int {
	n := 0
	for _, list := range o.Groups {
		n += len(list)
	}
	return n
}

// Snapshot is the serializable projection of an Outline, with sections
// copied by value so later mutations cannot leak into it.
type Snapshot struct {
	Title  Title                   `json:"title"`
	Groups map[GroupName][]Section `json:"groups"`
}

func (o *Outline) Snapshot() Snapshot {
	groups := make(map[GroupName][]Section, len(GroupOrder))
	for _, g := range GroupOrder {
		list := o.Groups[g]
		sections := make([]Section, len(list))
		for i, sec := range list {
			sections[i] = *sec
		}
		groups[g] = sections
	}
	return Snapshot{Title: o.Title, Groups: groups}
}
