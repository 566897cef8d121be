package localstore

import (
	"time"

	"github.com/ozguragaoglu95/pastayapp-api/models"
)

const (
	draftKeyPrefix  = "wizard_draft:"
	recentKeyPrefix = "recently_viewed:"

	// RecentlyViewedMax caps the per-user recently-viewed list.
	RecentlyViewedMax = 10
)

// Drafts wraps the key/value store with the wizard-draft and recently-viewed
// contracts. Draft owners are user ids, or client-supplied draft keys for
// anonymous users mid-registration.
type Drafts struct {
	store *Store
}

func NewDrafts(store *Store) *Drafts {
	return &Drafts{store: store}
}

// Save persists the draft verbatim. Every field must survive the round trip;
// the wizard restores exactly what the user left.
func (d *Drafts) Save(owner string, draft models.WizardDraft) error {
	draft.SavedAt = time.Now()
	return d.store.Set(draftKeyPrefix+owner, draft)
}

func (d *Drafts) Get(owner string) (models.WizardDraft, bool) {
	var draft models.WizardDraft
	ok := d.store.Get(draftKeyPrefix+owner, &draft)
	return draft, ok
}

func (d *Drafts) Delete(owner string) error {
	return d.store.Remove(draftKeyPrefix + owner)
}

// Claim re-homes an anonymous draft under the freshly authenticated user and
// returns it. Reports false when there was nothing to claim.
func (d *Drafts) Claim(draftKey, userID string) (models.WizardDraft, bool) {
	draft, ok := d.Get(draftKey)
	if !ok {
		return models.WizardDraft{}, false
	}
	if err := d.Save(userID, draft); err != nil {
		return models.WizardDraft{}, false
	}
	_ = d.store.Remove(draftKeyPrefix + draftKey)
	return draft, true
}

// PurgeExpired drops drafts untouched since the cutoff.
func (d *Drafts) PurgeExpired(cutoff time.Time) (int64, error) {
	return d.store.PurgeOlderThan(draftKeyPrefix, cutoff)
}

// RecordViewed pushes a template id onto the user's recently-viewed list:
// most-recent-first, deduplicated, capped at RecentlyViewedMax.
func (d *Drafts) RecordViewed(userID, templateID string) error {
	var ids []string
	d.store.Get(recentKeyPrefix+userID, &ids)

	out := make([]string, 0, len(ids)+1)
	out = append(out, templateID)
	for _, id := range ids {
		if id != templateID {
			out = append(out, id)
		}
	}
	if len(out) > RecentlyViewedMax {
		out = out[:RecentlyViewedMax]
	}
	return d.store.Set(recentKeyPrefix+userID, out)
}

func (d *Drafts) RecentlyViewed(userID string) []string {
	var ids []string
	d.store.Get(recentKeyPrefix+userID, &ids)
	return ids
}
