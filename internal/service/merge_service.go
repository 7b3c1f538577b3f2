package service

import (
	"github.com/boshify/content-brief-generator/internal/domain"
)

// MergeService reconciles a normalized webhook response into an outline.
//
// Correlation is by position within each group: the workflow does not echo
// client-assigned ids back, so position is the only key available. Reordering
// sections between round-trips can therefore pair a server item with a
// different local section than the one it was generated from.
type MergeService struct{}

func NewMergeService() *MergeService {
	return &MergeService{}
}

// Merge mutates the outline in place. Per group: locals past the end of the
// server list are kept, server items past the end of the local list are
// appended as new unlocked sections, and overlapping positions are
// overwritten unless the local section is locked. Sections are never deleted
// here; only the user removes sections.
func (s *MergeService) Merge(o *domain.Outline, in *domain.IncomingOutline) {
	s.mergeTitle(o, in)

	for _, g := range domain.GroupOrder {
		s.mergeGroup(o, g, in.Groups[g])
	}
}

// mergeTitle seeds the title from the server only while the title is
// unlocked and the user has never typed one. A user-entered title is a seed
// for the workflow, not something each round-trip may replace.
func (s *MergeService) mergeTitle(o *domain.Outline, in *domain.IncomingOutline) {
	if o.Title.Locked || o.Title.UserSet {
		return
	}
	if in.Title != "" {
		o.Title.Text = in.Title
	}
}

func (s *MergeService) mergeGroup(o *domain.Outline, group domain.GroupName, incoming []domain.IncomingSection) {
	current := o.Groups[group]

	for i, item := range incoming {
		if i >= len(current) {
			sec := o.AddSection(group)
			applyIncoming(sec, item)
			continue
		}

		sec := current[i]
		if sec.Locked {
			continue
		}
		// Id, lock flag, and generate-following intent always survive an
		// overwrite.
		applyIncoming(sec, item)
	}
}

func applyIncoming(sec *domain.Section, item domain.IncomingSection) {
	sec.HeadingName = item.HeadingName
	sec.Description = item.Description
	sec.HeadingLevel = item.HeadingLevel
	sec.AnswerType = item.AnswerType
	sec.AnswerLength = item.AnswerLength
}
