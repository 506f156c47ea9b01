package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EveryTopicHasEntry(t *testing.T) {
	c := Default()

	for _, topic := range AllTopics() {
		assert.True(t, c.Has(topic), "missing entry for %s", topic)
		assert.NotEmpty(t, c.Lookup(topic))
	}
}

func TestLookup_UnknownTopicPanics(t *testing.T) {
	c := New(map[Topic]Entry{TopicFallback: {Text: "fallback"}}, nil, nil, Vocabulary{})

	assert.Panics(t, func() { c.Lookup(TopicWhitening) })
	assert.Panics(t, func() { c.Variants(TopicUnknown) })
}

func TestNew_DanglingKeywordPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(map[Topic]Entry{}, []Association{{Term: "clarear", Topic: TopicWhitening}}, nil, Vocabulary{})
	})
}

func TestNew_EmptyTextPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(map[Topic]Entry{TopicFallback: {}}, nil, nil, Vocabulary{})
	})
}

func TestMatchKeyword_SubstringCaseAndAccentInsensitive(t *testing.T) {
	c := Default()

	topic, ok := c.MatchKeyword("Vocês fazem CLAREAMENTO?")
	require.True(t, ok)
	assert.Equal(t, TopicWhitening, topic)

	topic, ok = c.MatchKeyword("qual o preco?")
	require.True(t, ok)
	assert.Equal(t, TopicPrice, topic)

	// matches inside a longer word
	topic, ok = c.MatchKeyword("preciso de implantes")
	require.True(t, ok)
	assert.Equal(t, TopicImplant, topic)

	_, ok = c.MatchKeyword("xyz")
	assert.False(t, ok)
}

func TestMatchKeyword_TableOrderWins(t *testing.T) {
	c := Default()

	// whitening is earlier in the table than price
	topic, ok := c.MatchKeyword("qual o valor do clareamento")
	require.True(t, ok)
	assert.Equal(t, TopicWhitening, topic)
}

func TestMatchPhrase(t *testing.T) {
	c := Default()

	topic, ok := c.MatchPhrase("Oi, quero clarear meus dentes para o casamento")
	require.True(t, ok)
	assert.Equal(t, TopicWhitening, topic)

	_, ok = c.MatchPhrase("clarear")
	assert.False(t, ok)
}

func TestVariants(t *testing.T) {
	c := Default()

	variants := c.Variants(TopicPriceObjection)
	require.Len(t, variants, 3)
	assert.Equal(t, c.Lookup(TopicPriceObjection), variants[0])
	assert.Equal(t, variants[1:], c.Alternates(TopicPriceObjection))

	assert.Empty(t, c.Alternates(TopicLocation))
}

func TestCatalog_IsImmutable(t *testing.T) {
	c := Default()

	alts := c.Alternates(TopicPriceObjection)
	alts[0] = "changed"
	assert.NotEqual(t, "changed", c.Alternates(TopicPriceObjection)[0])

	vocab := c.Vocabulary()
	vocab.Positive[0] = "changed"
	assert.NotEqual(t, "changed", c.Vocabulary().Positive[0])
}

func TestVocabulary_IsFolded(t *testing.T) {
	vocab := Default().Vocabulary()

	assert.Contains(t, vocab.FamilyTerms, "mae")
	assert.Contains(t, vocab.Negative, "pessimo")
}

func TestRender(t *testing.T) {
	assert.Equal(t, "ganhe 15% hoje", Render("ganhe {desconto}% hoje", 15))
	assert.Equal(t, "sem marcador", Render("sem marcador", 10))
}

func TestTopic_KeysRoundTrip(t *testing.T) {
	for _, topic := range AllTopics() {
		parsed, ok := ParseTopic(topic.String())
		require.True(t, ok, topic.String())
		assert.Equal(t, topic, parsed)
	}

	_, ok := ParseTopic("unknown")
	assert.False(t, ok)
	assert.Equal(t, "payment-pix", TopicPaymentPix.String())
	assert.Equal(t, "whitening", TopicWhitening.String())
	assert.Equal(t, "price-objection", TopicPriceObjection.String())
}

func TestTopic_Categories(t *testing.T) {
	assert.Equal(t, CategoryService, TopicImplant.Category())
	assert.Equal(t, CategoryAesthetic, TopicWhitening.Category())
	assert.Equal(t, CategoryPayment, TopicPaymentPix.Category())
	assert.Equal(t, CategoryDiscount, TopicBereavement.Category())
	assert.Equal(t, CategoryInformation, TopicPrice.Category())
	assert.Equal(t, CategoryConversational, TopicGreeting.Category())

	assert.True(t, TopicWhitening.IsProduct())
	assert.True(t, TopicRootCanal.IsProduct())
	assert.False(t, TopicPrice.IsProduct())
	assert.False(t, TopicPaymentCard.IsProduct())
}
