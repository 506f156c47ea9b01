package engine

import (
	"clinic-engagement-engine/pkg/catalog"
	"clinic-engagement-engine/pkg/classifier"
	"clinic-engagement-engine/pkg/discount"
	"clinic-engagement-engine/pkg/models"
	"clinic-engagement-engine/pkg/variant"
)

// respond applies m to cc and returns the reply text. The outcome is only
// meaningful when the match went through the discount policy.
func (e *Engine) respond(cc *models.ChatContext, m classifier.Match) (string, discount.Outcome) {
	if m.Rule == classifier.RuleFallback {
		return e.catalog.Lookup(catalog.TopicFallback), discount.Outcome{}
	}

	if m.Sentiment != "" {
		cc.Sentiment = m.Sentiment
	}
	if m.PaymentMethod != "" {
		cc.PaymentMethodMentioned = m.PaymentMethod
	}
	if m.Topic.IsProduct() {
		cc.InterestedTopic = m.Topic.String()
	}
	cc.RecordTopic(m.Topic.String())

	switch {
	case m.AffectsDiscount():
		outcome := e.policy.Apply(cc, m.Reason)
		return outcome.Reply, outcome
	case m.Rule == classifier.RuleWhyUs:
		return variant.Pick(e.chooser, e.catalog.Variants(m.Topic)), discount.Outcome{}
	default:
		return catalog.Render(e.catalog.Lookup(m.Topic), cc.DiscountPercent), discount.Outcome{}
	}
}
