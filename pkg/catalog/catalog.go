// Package catalog holds the immutable reply texts and the keyword and phrase
// tables the classifier matches utterances against.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"clinic-engagement-engine/pkg/textnorm"
)

// DiscountPlaceholder is replaced by the session's current tier when a reply
// is rendered.
const DiscountPlaceholder = "{desconto}"

// Entry is the reply for a topic. Alternates are used when the same trigger
// repeats and the primary text would be a verbatim repeat.
type Entry struct {
	Text       string
	Alternates []string
}

// Association maps a term (keyword or multi-word phrase) to a topic.
type Association struct {
	Term  string
	Topic Topic
}

// PaymentMethod maps a payment term to the method recorded on the context
// and the topic whose reply explains it.
type PaymentMethod struct {
	Term   string
	Method string
	Topic  Topic
}

// Vocabulary is the term lists the classifier and the suggestion engine use
// beyond the plain keyword table. All terms are stored folded.
type Vocabulary struct {
	LossTerms        []string
	FamilyTerms      []string
	DistressTerms    []string
	FirstPersonTerms []string
	PriceObjection   []string
	Comparison       []string
	Positive         []string
	Negative         []string
	WhyUs            []string
	PaymentMethods   []PaymentMethod
	PriceTerms       []string
	FearTerms        []string
	SchedulingTerms  []string
}

type Catalog struct {
	entries  map[Topic]Entry
	keywords []Association
	phrases  []Association
	vocab    Vocabulary
}

// New builds a catalog. Every topic referenced by a keyword, phrase or
// payment method must have an entry; a missing one is a programming error
// and panics.
func New(entries map[Topic]Entry, keywords, phrases []Association, vocab Vocabulary) *Catalog {
	c := &Catalog{
		entries:  make(map[Topic]Entry, len(entries)),
		keywords: foldAssociations(keywords),
		phrases:  foldAssociations(phrases),
		vocab:    foldVocabulary(vocab),
	}

	for topic, entry := range entries {
		if entry.Text == "" {
			panic(fmt.Sprintf("catalog: empty text for topic %s", topic))
		}
		c.entries[topic] = Entry{
			Text:       entry.Text,
			Alternates: append([]string(nil), entry.Alternates...),
		}
	}

	for _, a := range c.keywords {
		c.mustHave(a.Topic, "keyword "+a.Term)
	}
	for _, a := range c.phrases {
		c.mustHave(a.Topic, "phrase "+a.Term)
	}
	for _, p := range c.vocab.PaymentMethods {
		c.mustHave(p.Topic, "payment term "+p.Term)
	}

	return c
}

func (c *Catalog) mustHave(topic Topic, what string) {
	if _, ok := c.entries[topic]; !ok {
		panic(fmt.Sprintf("catalog: %s references topic %s with no entry", what, topic))
	}
}

func (c *Catalog) entry(topic Topic) Entry {
	entry, ok := c.entries[topic]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown topic %s", topic))
	}
	return entry
}

// Has reports whether the topic has an entry.
func (c *Catalog) Has(topic Topic) bool {
	_, ok := c.entries[topic]
	return ok
}

// Lookup returns the primary text of a topic. Unknown topics panic.
func (c *Catalog) Lookup(topic Topic) string {
	return c.entry(topic).Text
}

// Alternates returns the non-primary variants of a topic, possibly empty.
func (c *Catalog) Alternates(topic Topic) []string {
	return append([]string(nil), c.entry(topic).Alternates...)
}

// Variants returns the primary text followed by its alternates.
func (c *Catalog) Variants(topic Topic) []string {
	entry := c.entry(topic)
	out := make([]string, 0, 1+len(entry.Alternates))
	out = append(out, entry.Text)
	return append(out, entry.Alternates...)
}

// MatchKeyword returns the topic of the first keyword, in table order,
// contained anywhere in the utterance.
func (c *Catalog) MatchKeyword(utterance string) (Topic, bool) {
	return match(c.keywords, textnorm.Fold(utterance))
}

// MatchPhrase returns the topic of the first canned phrase contained in the
// utterance.
func (c *Catalog) MatchPhrase(utterance string) (Topic, bool) {
	return match(c.phrases, textnorm.Fold(utterance))
}

// Vocabulary returns a copy of the term lists.
func (c *Catalog) Vocabulary() Vocabulary {
	return cloneVocabulary(c.vocab)
}

// Render substitutes the discount placeholder in text.
func Render(text string, percent int) string {
	return strings.ReplaceAll(text, DiscountPlaceholder, strconv.Itoa(percent))
}

func match(table []Association, folded string) (Topic, bool) {
	for _, a := range table {
		if strings.Contains(folded, a.Term) {
			return a.Topic, true
		}
	}
	return TopicUnknown, false
}

func foldAssociations(in []Association) []Association {
	out := make([]Association, 0, len(in))
	for _, a := range in {
		out = append(out, Association{Term: textnorm.Fold(a.Term), Topic: a.Topic})
	}
	return out
}

func foldTerms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, term := range in {
		out = append(out, textnorm.Fold(term))
	}
	return out
}

func foldVocabulary(v Vocabulary) Vocabulary {
	payments := make([]PaymentMethod, 0, len(v.PaymentMethods))
	for _, p := range v.PaymentMethods {
		payments = append(payments, PaymentMethod{Term: textnorm.Fold(p.Term), Method: p.Method, Topic: p.Topic})
	}
	return Vocabulary{
		LossTerms:        foldTerms(v.LossTerms),
		FamilyTerms:      foldTerms(v.FamilyTerms),
		DistressTerms:    foldTerms(v.DistressTerms),
		FirstPersonTerms: foldTerms(v.FirstPersonTerms),
		PriceObjection:   foldTerms(v.PriceObjection),
		Comparison:       foldTerms(v.Comparison),
		Positive:         foldTerms(v.Positive),
		Negative:         foldTerms(v.Negative),
		WhyUs:            foldTerms(v.WhyUs),
		PaymentMethods:   payments,
		PriceTerms:       foldTerms(v.PriceTerms),
		FearTerms:        foldTerms(v.FearTerms),
		SchedulingTerms:  foldTerms(v.SchedulingTerms),
	}
}

func cloneVocabulary(v Vocabulary) Vocabulary {
	return Vocabulary{
		LossTerms:        append([]string(nil), v.LossTerms...),
		FamilyTerms:      append([]string(nil), v.FamilyTerms...),
		DistressTerms:    append([]string(nil), v.DistressTerms...),
		FirstPersonTerms: append([]string(nil), v.FirstPersonTerms...),
		PriceObjection:   append([]string(nil), v.PriceObjection...),
		Comparison:       append([]string(nil), v.Comparison...),
		Positive:         append([]string(nil), v.Positive...),
		Negative:         append([]string(nil), v.Negative...),
		WhyUs:            append([]string(nil), v.WhyUs...),
		PaymentMethods:   append([]PaymentMethod(nil), v.PaymentMethods...),
		PriceTerms:       append([]string(nil), v.PriceTerms...),
		FearTerms:        append([]string(nil), v.FearTerms...),
		SchedulingTerms:  append([]string(nil), v.SchedulingTerms...),
	}
}
