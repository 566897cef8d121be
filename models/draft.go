package models

import "time"

// DraftChatMessage is one turn of the design wizard's concept chat. Kept
// separate from ChatMessage: drafts exist before any request does.
type DraftChatMessage struct {
	Sender string `json:"sender"` // "user" or "assistant"
	Text   string `json:"text"`
	Image  string `json:"image,omitempty"`
}

// WizardDraft is the design wizard's entire working state, saved whenever the
// user is interrupted mid-flow (typically forced authentication) and restored
// verbatim afterwards. Every field round-trips bit-for-bit: losing a step
// index or a chat turn silently discards user input.
type WizardDraft struct {
	Step                 int                `json:"step"`
	DesignName           string             `json:"design_name"`
	Spec                 CakeSpec           `json:"spec"`
	ReferenceImages      []string           `json:"reference_images"`
	ConceptChat          []DraftChatMessage `json:"concept_chat"`
	SelectedConceptImage string             `json:"selected_concept_image"`
	PendingRequestID     string             `json:"pending_request_id"`
	AutoSubmit           bool               `json:"auto_submit"`
	SavedAt              time.Time          `json:"saved_at"`
}
