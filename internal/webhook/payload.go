package webhook

import (
	"encoding/json"

	"github.com/boshify/content-brief-generator/internal/domain"
)

// Payload is the outbound wire shape the workflow webhook expects. The field
// names match the workflow's node expressions, so they are not conventional
// JSON keys.
type Payload struct {
	SessionID string      `json:"session_id"`
	H1        TitleItem   `json:"H1"`
	Feedback  string      `json:"feedback"`
	Groups    GroupArrays `json:"-"`
}

type TitleItem struct {
	Text string `json:"text"`
	Lock bool   `json:"lock"`
}

type GroupArrays map[domain.GroupName][]SectionItem

type SectionItem struct {
	H2           string `json:"H2"`
	Methodology  string `json:"Methodology"`
	HeadingLevel string `json:"HeadingLevel"`
	AnswerType   string `json:"Answer Type"`
	AnswerLength string `json:"Answer Length"`
	Lock         bool   `json:"lock"`
	// SubsequentSections signals "synthesize sections after this one" and is
	// only present while the section is locked.
	SubsequentSections string `json:"Subsequent Sections?,omitempty"`
}

// MarshalJSON flattens the group arrays to top-level keys alongside the
// scalar fields, e.g. {"session_id":..., "H1":..., "MainContent":[...]}.
func (p *Payload) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Groups)+3)
	out["session_id"] = p.SessionID
	out["H1"] = p.H1
	out["feedback"] = p.Feedback
	for name, items := range p.Groups {
		out[string(name)] = items
	}
	return json.Marshal(out)
}

// BuildPayload projects an outline snapshot into the wire shape.
func BuildPayload(sessionID string, snap domain.Snapshot, feedback string) *Payload {
	groups := make(GroupArrays, len(domain.GroupOrder))
	for _, g := range domain.GroupOrder {
		sections := snap.Groups[g]
		items := make([]SectionItem, 0, len(sections))
		for _, sec := range sections {
			item := SectionItem{
				H2:           sec.HeadingName,
				Methodology:  sec.Description,
				HeadingLevel: string(sec.HeadingLevel),
				AnswerType:   string(sec.AnswerType),
				AnswerLength: string(sec.AnswerLength),
				Lock:         sec.Locked,
			}
			if sec.Locked {
				item.SubsequentSections = "No"
				if sec.GenerateFollowing {
					item.SubsequentSections = "Yes"
				}
			}
			items = append(items, item)
		}
		groups[g] = items
	}
	return &Payload{
		SessionID: sessionID,
		H1:        TitleItem{Text: snap.Title.Text, Lock: snap.Title.Locked},
		Feedback:  feedback,
		Groups:    groups,
	}
}
