package suggestions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-engagement-engine/pkg/catalog"
	"clinic-engagement-engine/pkg/models"
)

func newEngine() *Engine {
	return NewEngine(catalog.Default(), DefaultBuckets())
}

func newContext() *models.ChatContext {
	return models.NewChatContext(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
}

func visitor(text string) models.Message {
	return models.Message{Sender: models.SenderVisitor, Text: text}
}

func engineMsg(text string) models.Message {
	return models.Message{Sender: models.SenderEngine, Text: text}
}

func intents(list []models.Suggestion) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Intent)
	}
	return out
}

func TestBucket_Selection(t *testing.T) {
	e := newEngine()

	tests := []struct {
		name   string
		setup  func(cc *models.ChatContext)
		recent []models.Message
		want   string
	}{
		{"empty context", nil, nil, BucketInitial},
		{"service interest", func(cc *models.ChatContext) { cc.InterestedTopic = catalog.TopicImplant.String() }, nil, BucketServices},
		{"aesthetic interest", func(cc *models.ChatContext) { cc.InterestedTopic = catalog.TopicWhitening.String() }, nil, BucketAesthetics},
		{"discount granted", func(cc *models.ChatContext) { cc.DiscountGranted = true; cc.DiscountPercent = 10 }, nil, BucketPricing},
		{"price mentioned", nil, []models.Message{visitor("qual o preço?")}, BucketPricing},
		{"fear mentioned", nil, []models.Message{visitor("tenho muito medo de dentista")}, BucketFear},
		{"scheduling mentioned", nil, []models.Message{visitor("quero agendar")}, BucketAppointment},
		{"engine text ignored", nil, []models.Message{engineMsg("temos desconto hoje")}, BucketInitial},
		{"pricing beats fear", nil, []models.Message{visitor("medo"), visitor("quanto custa")}, BucketPricing},
		{"interest beats pricing", func(cc *models.ChatContext) {
			cc.InterestedTopic = catalog.TopicVeneers.String()
			cc.DiscountGranted = true
		}, nil, BucketAesthetics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := newContext()
			if tt.setup != nil {
				tt.setup(cc)
			}
			assert.Equal(t, tt.want, e.Bucket(cc, tt.recent))
		})
	}
}

func TestFor_InitialBucketWithoutCustom(t *testing.T) {
	e := newEngine()

	got := e.For(newContext(), nil)

	assert.Equal(t, DefaultBuckets()[BucketInitial], got)
}

func TestFor_WhiteningCustomReplacesFourthItem(t *testing.T) {
	e := newEngine()
	cc := newContext()
	cc.InterestedTopic = catalog.TopicWhitening.String()
	cc.RecordTopic(catalog.TopicWhitening.String())

	got := e.For(cc, nil)

	require.Len(t, got, MaxBase)
	base := DefaultBuckets()[BucketAesthetics]
	assert.Equal(t, base[:MaxBase-1], got[:MaxBase-1])
	assert.Equal(t, IntentWhiteningSafety, got[MaxBase-1].Intent)
}

func TestFor_PaymentCustomSkippedWhenCovered(t *testing.T) {
	e := newEngine()
	cc := newContext()
	cc.DiscountGranted = true
	cc.RecordTopic(catalog.TopicPaymentPix.String())

	got := e.For(cc, nil)

	// the pricing bucket already asks about installments
	assert.Equal(t, DefaultBuckets()[BucketPricing], got)
}

func TestFor_PaymentCustomOnOtherBucket(t *testing.T) {
	e := newEngine()
	cc := newContext()
	cc.RecordTopic(catalog.TopicPaymentCard.String())

	got := e.For(cc, nil)

	assert.Equal(t, []string{IntentServices, IntentConsultPrice, IntentBookEvaluation, IntentInstallments}, intents(got))
}

func TestFor_OnlyMostRecentTopicCounts(t *testing.T) {
	e := newEngine()
	cc := newContext()
	cc.RecordTopic(catalog.TopicWhitening.String())
	cc.RecordTopic(catalog.TopicLocation.String())

	got := e.For(cc, nil)

	assert.NotContains(t, intents(got), IntentWhiteningSafety)
}

func TestFor_NeverDuplicatesIntents(t *testing.T) {
	e := newEngine()

	for _, topic := range catalog.AllTopics() {
		cc := newContext()
		cc.RecordTopic(topic.String())
		if topic.IsProduct() {
			cc.InterestedTopic = topic.String()
		}

		got := e.For(cc, []models.Message{visitor("quanto custa?")})

		require.NotEmpty(t, got, topic.String())
		assert.LessOrEqual(t, len(got), MaxBase+1)
		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s.Intent], "duplicate intent %s for %s", s.Intent, topic)
			seen[s.Intent] = true
		}
	}
}

func TestFor_ResultIsACopy(t *testing.T) {
	e := newEngine()

	got := e.For(newContext(), nil)
	got[0].Text = "changed"

	assert.NotEqual(t, "changed", e.For(newContext(), nil)[0].Text)
}

func TestNewEngine_PanicsOnEmptyBucket(t *testing.T) {
	buckets := DefaultBuckets()
	delete(buckets, BucketFear)

	assert.Panics(t, func() { NewEngine(catalog.Default(), buckets) })
}
