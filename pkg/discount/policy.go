// Package discount decides when a session's promotional discount moves up
// and which reply variant goes with the decision.
package discount

import (
	"fmt"
	"time"

	"clinic-engagement-engine/pkg/catalog"
	"clinic-engagement-engine/pkg/constants"
	"clinic-engagement-engine/pkg/models"
	"clinic-engagement-engine/pkg/variant"
)

// Outcome describes what a single Apply did to the context.
type Outcome struct {
	Reason   models.DiscountReason
	Previous int
	Current  int
	Reply    string
}

// Escalated reports whether the tier moved.
func (o Outcome) Escalated() bool {
	return o.Current > o.Previous
}

// Announcement builds the event published for an escalation.
func (o Outcome) Announcement(sessionID models.SessionID, source string, at time.Time) models.DiscountAnnouncement {
	return models.DiscountAnnouncement{
		SessionID:   sessionID,
		Previous:    o.Previous,
		Percent:     o.Current,
		Reason:      o.Reason,
		Source:      source,
		AnnouncedAt: at,
	}
}

type Policy struct {
	catalog *catalog.Catalog
	chooser variant.Chooser
}

func NewPolicy(c *catalog.Catalog, chooser variant.Chooser) *Policy {
	return &Policy{catalog: c, chooser: chooser}
}

// Apply runs the escalation path for reason against cc. The tier never
// moves down, never leaves {0, 10, 15, 20} and is pinned at the ceiling once
// severe distress was flagged.
func (p *Policy) Apply(cc *models.ChatContext, reason models.DiscountReason) Outcome {
	previous := cc.DiscountPercent
	target := previous

	switch reason {
	case models.ReasonPriceObjection, models.ReasonComparison:
		if !cc.DiscountGranted {
			target = constants.DiscountObjection
		}
	case models.ReasonNegativeFirst:
		if !cc.DiscountGranted {
			target = constants.DiscountSentiment
		}
	case models.ReasonNegativeRepeated:
		if !cc.DiscountGranted {
			target = constants.DiscountSentiment
		} else if previous < constants.DiscountCeiling {
			target = constants.DiscountCeiling
		}
	case models.ReasonBereavement:
		cc.BereavementFlagged = true
		target = max(previous, constants.DiscountSentiment)
	case models.ReasonSevereDistress:
		cc.SevereDistressFlagged = true
		target = constants.DiscountCeiling
	default:
		panic(fmt.Sprintf("discount: unknown reason %q", reason))
	}

	if cc.SevereDistressFlagged {
		target = constants.DiscountCeiling
	}
	if target > previous {
		cc.DiscountPercent = target
		cc.DiscountGranted = true
	}

	topic := TopicFor(reason)
	if reason == models.ReasonNegativeRepeated && cc.DiscountPercent < constants.DiscountCeiling {
		// a repeat before any grant only reaches the sentiment tier
		topic = catalog.TopicNegativeSentiment
	}
	var text string
	if cc.DiscountPercent > previous {
		text = p.catalog.Lookup(topic)
	} else {
		text = p.alternate(topic)
	}

	return Outcome{
		Reason:   reason,
		Previous: previous,
		Current:  cc.DiscountPercent,
		Reply:    catalog.Render(text, cc.DiscountPercent),
	}
}

func (p *Policy) alternate(topic catalog.Topic) string {
	alts := p.catalog.Alternates(topic)
	if len(alts) == 0 {
		return p.catalog.Lookup(topic)
	}
	return variant.Pick(p.chooser, alts)
}

// TopicFor is the reply topic a reason renders with.
func TopicFor(reason models.DiscountReason) catalog.Topic {
	switch reason {
	case models.ReasonPriceObjection:
		return catalog.TopicPriceObjection
	case models.ReasonComparison:
		return catalog.TopicComparisonShopping
	case models.ReasonNegativeFirst:
		return catalog.TopicNegativeSentiment
	case models.ReasonNegativeRepeated:
		return catalog.TopicNegativeRepeated
	case models.ReasonBereavement:
		return catalog.TopicBereavement
	default:
		return catalog.TopicSevereDistress
	}
}
