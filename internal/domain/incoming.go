package domain

// IncomingOutline is the normalized shape of a webhook response, ready for
// reconciliation. Groups absent from the response appear as empty lists,
// which the merge treats as "no change".
type IncomingOutline struct {
	Title  string
	Groups map[GroupName][]IncomingSection
}

// IncomingSection carries only the content fields the merge may overwrite.
// The server never echoes client-assigned ids, so there is no id here;
// correlation is by position.
type IncomingSection struct {
	HeadingName  string
	Description  string
	HeadingLevel HeadingLevel
	AnswerType   AnswerType
	AnswerLength AnswerLength
}
