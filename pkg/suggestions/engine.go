// Package suggestions derives the follow-up chips shown under each reply.
package suggestions

import (
	"fmt"

	"clinic-engagement-engine/pkg/catalog"
	"clinic-engagement-engine/pkg/models"
	"clinic-engagement-engine/pkg/textnorm"
)

// MaxBase is the number of base suggestions shown per bucket.
const MaxBase = 4

var bucketOrder = []string{
	BucketInitial, BucketServices, BucketAesthetics, BucketPricing, BucketFear, BucketAppointment,
}

type Engine struct {
	buckets Buckets
	vocab   catalog.Vocabulary
}

// NewEngine panics if a bucket is missing or empty.
func NewEngine(c *catalog.Catalog, buckets Buckets) *Engine {
	for _, name := range bucketOrder {
		if len(buckets[name]) == 0 {
			panic(fmt.Sprintf("suggestions: bucket %q is empty", name))
		}
	}
	return &Engine{buckets: buckets, vocab: c.Vocabulary()}
}

// Bucket names which bucket applies to the context and message log.
func (e *Engine) Bucket(cc *models.ChatContext, recent []models.Message) string {
	if topic, ok := catalog.ParseTopic(cc.InterestedTopic); ok {
		switch topic.Category() {
		case catalog.CategoryService:
			return BucketServices
		case catalog.CategoryAesthetic:
			return BucketAesthetics
		}
	}

	if cc.DiscountGranted || e.mentions(recent, e.vocab.PriceTerms) {
		return BucketPricing
	}
	if e.mentions(recent, e.vocab.FearTerms) {
		return BucketFear
	}
	if e.mentions(recent, e.vocab.SchedulingTerms) {
		return BucketAppointment
	}
	return BucketInitial
}

// For returns the suggestions to render. The result is never empty and never
// holds two suggestions with the same intent.
func (e *Engine) For(cc *models.ChatContext, recent []models.Message) []models.Suggestion {
	base := e.buckets[e.Bucket(cc, recent)]
	if len(base) > MaxBase {
		base = base[:MaxBase]
	}
	out := append([]models.Suggestion(nil), base...)

	custom, ok := customFor(cc)
	if !ok || covered(out, custom.Intent) {
		return out
	}
	if len(out) >= MaxBase {
		out[MaxBase-1] = custom
		return out
	}
	return append(out, custom)
}

// customFor picks the dynamic suggestion tied to the last recorded topic.
func customFor(cc *models.ChatContext) (models.Suggestion, bool) {
	last, ok := cc.LastTopic()
	if !ok {
		return models.Suggestion{}, false
	}
	topic, ok := catalog.ParseTopic(last)
	if !ok {
		return models.Suggestion{}, false
	}

	switch {
	case topic == catalog.TopicWhitening:
		return models.Suggestion{Text: "O clareamento causa sensibilidade?", Intent: IntentWhiteningSafety}, true
	case topic.Category() == catalog.CategoryPayment:
		return models.Suggestion{Text: "Posso parcelar no cartão?", Intent: IntentInstallments}, true
	}
	return models.Suggestion{}, false
}

func covered(list []models.Suggestion, intent string) bool {
	for _, s := range list {
		if s.Intent == intent {
			return true
		}
	}
	return false
}

// mentions only looks at visitor messages; engine replies would otherwise
// trip the price vocabulary on their own.
func (e *Engine) mentions(recent []models.Message, terms []string) bool {
	for _, msg := range recent {
		if msg.Sender != models.SenderVisitor {
			continue
		}
		if _, ok := textnorm.ContainsAny(textnorm.Fold(msg.Text), terms); ok {
			return true
		}
	}
	return false
}
