package hooks

import (
	"context"

	"github.com/Wikia/thanksmetoo/internal/config"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

type thanksURLer interface {
	ThanksURL(key domain.ThanksKey) string
}

// ThankLinkListener adds a thank link, or a thanked marker, wherever the
// viewer may thank the contribution shown.
type ThankLinkListener struct {
	cfg   config.ThanksConfig
	links thanksURLer
}

// NewThankLinkListener creates a ThankLinkListener.
func NewThankLinkListener(cfg config.ThanksConfig, links thanksURLer) *ThankLinkListener {
	return &ThankLinkListener{cfg: cfg, links: links}
}

var _ Listener = (*ThankLinkListener)(nil)

func (l *ThankLinkListener) OnHistoryView(_ context.Context, v HistoryView) []Tool {
	return l.revisionTools(v)
}

func (l *ThankLinkListener) OnDiffView(_ context.Context, v HistoryView) []Tool {
	return l.revisionTools(v)
}

func (l *ThankLinkListener) revisionTools(v HistoryView) []Tool {
	rev := v.Revision
	if rev == nil || !rev.HasAuthor() {
		return nil
	}
	if !l.viewerMayThank(v.Viewer) || v.Viewer.ID == v.Recipient.ID {
		return nil
	}
	if !v.Recipient.CanReceiveThanks(l.cfg.SendToBots) || rev.IsDeleted(domain.DeletedText) {
		return nil
	}
	// A diff spanning several revisions has no single author to thank.
	if v.Previous != nil && rev.ParentID != 0 && rev.ParentID != v.Previous.ID {
		return nil
	}
	return []Tool{l.tool(v.Session, domain.ThanksKey{Kind: domain.EventKindEdit, ID: rev.ID}, v.Recipient)}
}

func (l *ThankLinkListener) OnLogLine(_ context.Context, v LogLineView) []Tool {
	entry := v.Entry
	if entry == nil || !l.viewerMayThank(v.Viewer) {
		return nil
	}
	if !l.cfg.IsLogTypeAllowed(entry.Type) {
		return nil
	}
	if v.Recipient.ID != entry.PerformerID || v.Recipient.ID == v.Viewer.ID {
		return nil
	}
	if !v.Recipient.CanReceiveThanks(l.cfg.SendToBots) {
		return nil
	}

	key := domain.ThanksKey{Kind: domain.EventKindAction, ID: entry.ID}
	if entry.AssociatedRevID != 0 {
		key = domain.ThanksKey{Kind: domain.EventKindEdit, ID: entry.AssociatedRevID}
	}
	return []Tool{l.tool(v.Session, key, v.Recipient)}
}

func (l *ThankLinkListener) viewerMayThank(viewer domain.Identity) bool {
	return viewer.IsRegistered() && !viewer.IsBlockedAnywhere()
}

func (l *ThankLinkListener) tool(session domain.SessionFlags, key domain.ThanksKey, recipient domain.Identity) Tool {
	t := Tool{
		Kind:       ToolThankLink,
		TargetKind: key.Kind,
		TargetID:   key.ID,
		Recipient:  recipient.Name,
	}
	if session != nil {
		for _, k := range key.SessionKeys() {
			if session.Has(k) {
				t.Kind = ToolThanked
				return t
			}
		}
	}
	t.Href = l.links.ThanksURL(key)
	return t
}
