// Package classifier decides which rule an utterance falls under. It only
// reads the session context; applying the decision is the engine's job.
package classifier

import (
	"fmt"
	"strings"

	"clinic-engagement-engine/pkg/catalog"
	"clinic-engagement-engine/pkg/models"
	"clinic-engagement-engine/pkg/textnorm"
)

// Match is the outcome of classifying one utterance.
type Match struct {
	Rule  Rule
	Topic catalog.Topic

	// Reason is set for rules that run the discount policy.
	Reason models.DiscountReason
	// Sentiment is set when the utterance carries one.
	Sentiment models.Sentiment
	// PaymentMethod is set for RulePaymentMethod.
	PaymentMethod string
}

// AffectsDiscount reports whether the match must go through the discount
// policy.
func (m Match) AffectsDiscount() bool {
	return m.Reason != ""
}

type input struct {
	folded string
	words  []string
	ctx    *models.ChatContext
}

type detector func(in input) (Match, bool)

type Classifier struct {
	catalog   *catalog.Catalog
	vocab     catalog.Vocabulary
	detectors map[Rule]detector
}

func New(c *catalog.Catalog) *Classifier {
	cl := &Classifier{
		catalog: c,
		vocab:   c.Vocabulary(),
	}
	cl.detectors = map[Rule]detector{
		RuleBereavement:        cl.bereavement,
		RuleSevereDistress:     cl.severeDistress,
		RulePriceObjection:     cl.priceObjection,
		RuleComparisonShopping: cl.comparisonShopping,
		RulePaymentMethod:      cl.paymentMethod,
		RulePersistedNegative:  cl.persistedNegative,
		RuleExactPhrase:        cl.exactPhrase,
		RuleSentiment:          cl.sentiment,
		RuleWhyUs:              cl.whyUs,
		RuleKeyword:            cl.keyword,
		RuleFallback:           cl.fallback,
	}
	for _, rule := range Precedence {
		if _, ok := cl.detectors[rule]; !ok {
			panic(fmt.Sprintf("classifier: no detector for rule %s", rule))
		}
	}
	return cl
}

// Classify evaluates the rules in precedence order against utterance.
// cc is only read. A match is always returned; RuleFallback catches
// everything else.
func (cl *Classifier) Classify(utterance string, cc *models.ChatContext) Match {
	folded := textnorm.Fold(utterance)
	in := input{folded: folded, words: textnorm.Words(folded), ctx: cc}

	for _, rule := range Precedence {
		if m, ok := cl.detectors[rule](in); ok {
			m.Rule = rule
			return m
		}
	}
	// unreachable, fallback always matches
	return Match{Rule: RuleFallback, Topic: catalog.TopicFallback}
}

func (cl *Classifier) bereavement(in input) (Match, bool) {
	if !containsAny(in.folded, cl.vocab.LossTerms) || !containsAny(in.folded, cl.vocab.FamilyTerms) {
		return Match{}, false
	}
	return Match{Topic: catalog.TopicBereavement, Reason: models.ReasonBereavement}, true
}

func (cl *Classifier) severeDistress(in input) (Match, bool) {
	if !containsAny(in.folded, cl.vocab.DistressTerms) || !containsWord(in, cl.vocab.FirstPersonTerms) {
		return Match{}, false
	}
	return Match{Topic: catalog.TopicSevereDistress, Reason: models.ReasonSevereDistress}, true
}

func (cl *Classifier) priceObjection(in input) (Match, bool) {
	if !containsAny(in.folded, cl.vocab.PriceObjection) {
		return Match{}, false
	}
	return Match{Topic: catalog.TopicPriceObjection, Reason: models.ReasonPriceObjection}, true
}

func (cl *Classifier) comparisonShopping(in input) (Match, bool) {
	if !containsAny(in.folded, cl.vocab.Comparison) {
		return Match{}, false
	}
	return Match{Topic: catalog.TopicComparisonShopping, Reason: models.ReasonComparison}, true
}

func (cl *Classifier) paymentMethod(in input) (Match, bool) {
	for _, p := range cl.vocab.PaymentMethods {
		if strings.Contains(in.folded, p.Term) {
			return Match{Topic: p.Topic, PaymentMethod: p.Method}, true
		}
	}
	return Match{}, false
}

// persistedNegative only fires for a one-word negative utterance right after
// a negative one. A first negative word falls through to the sentiment rule.
func (cl *Classifier) persistedNegative(in input) (Match, bool) {
	if len(in.words) != 1 || in.ctx.Sentiment != models.SentimentNegative {
		return Match{}, false
	}
	if !containsAny(in.words[0], cl.vocab.Negative) {
		return Match{}, false
	}
	return Match{
		Topic:     catalog.TopicNegativeRepeated,
		Reason:    models.ReasonNegativeRepeated,
		Sentiment: models.SentimentNegative,
	}, true
}

func (cl *Classifier) exactPhrase(in input) (Match, bool) {
	topic, ok := cl.catalog.MatchPhrase(in.folded)
	if !ok {
		return Match{}, false
	}
	return Match{Topic: topic}, true
}

// Negative vocabulary is checked first so "não gostei" is not read as
// "gostei".
func (cl *Classifier) sentiment(in input) (Match, bool) {
	if containsAny(in.folded, cl.vocab.Negative) {
		return Match{
			Topic:     catalog.TopicNegativeSentiment,
			Reason:    models.ReasonNegativeFirst,
			Sentiment: models.SentimentNegative,
		}, true
	}
	if containsAny(in.folded, cl.vocab.Positive) {
		return Match{Topic: catalog.TopicPositive, Sentiment: models.SentimentPositive}, true
	}
	return Match{}, false
}

func (cl *Classifier) whyUs(in input) (Match, bool) {
	if !containsAny(in.folded, cl.vocab.WhyUs) {
		return Match{}, false
	}
	return Match{Topic: catalog.TopicWhyUs}, true
}

func (cl *Classifier) keyword(in input) (Match, bool) {
	topic, ok := cl.catalog.MatchKeyword(in.folded)
	if !ok {
		return Match{}, false
	}
	return Match{Topic: topic}, true
}

func (cl *Classifier) fallback(input) (Match, bool) {
	return Match{Topic: catalog.TopicFallback}, true
}

// containsWord matches single-word terms against whole words only, so "eu"
// does not hit "seu" or "deus". Multi-word terms fall back to substring.
func containsWord(in input, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(term, " ") {
			if strings.Contains(in.folded, term) {
				return true
			}
			continue
		}
		for _, w := range in.words {
			if w == term {
				return true
			}
		}
	}
	return false
}

func containsAny(text string, terms []string) bool {
	_, ok := textnorm.ContainsAny(text, terms)
	return ok
}
