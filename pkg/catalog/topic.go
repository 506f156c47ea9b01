package catalog

// Topic is a canonical classified intent.
type Topic int

const (
	TopicUnknown Topic = iota

	// conversational
	TopicGreeting
	TopicFallback
	TopicInactivityNudge
	TopicGoodbye
	TopicHello
	TopicThanks
	TopicFarewell
	TopicPositive
	TopicWhyUs

	// discount-bearing
	TopicBereavement
	TopicSevereDistress
	TopicPriceObjection
	TopicComparisonShopping
	TopicNegativeSentiment
	TopicNegativeRepeated

	// payment
	TopicPaymentPix
	TopicPaymentCard
	TopicPaymentBoleto
	TopicPaymentCash
	TopicPaymentInstallments

	// medical / surgical services
	TopicImplant
	TopicOrthodontics
	TopicRootCanal
	TopicExtraction
	TopicCleaning
	TopicEmergency

	// aesthetic services
	TopicWhitening
	TopicVeneers
	TopicHarmonization

	// practical information
	TopicPrice
	TopicAppointment
	TopicLocation
	TopicHours
	TopicInsurance
	TopicFear

	topicCount
)

// Category groups topics for suggestion bucketing.
type Category int

const (
	CategoryConversational Category = iota
	CategoryDiscount
	CategoryPayment
	CategoryService
	CategoryAesthetic
	CategoryInformation
)

var topicKeys = [topicCount]string{
	TopicUnknown:             "unknown",
	TopicGreeting:            "greeting",
	TopicFallback:            "fallback",
	TopicInactivityNudge:     "inactivity-nudge",
	TopicGoodbye:             "goodbye",
	TopicHello:               "hello",
	TopicThanks:              "thanks",
	TopicFarewell:            "farewell",
	TopicPositive:            "positive-sentiment",
	TopicWhyUs:               "why-us",
	TopicBereavement:         "bereavement",
	TopicSevereDistress:      "severe-distress",
	TopicPriceObjection:      "price-objection",
	TopicComparisonShopping:  "comparison-shopping",
	TopicNegativeSentiment:   "negative-sentiment",
	TopicNegativeRepeated:    "negative-sentiment-repeated",
	TopicPaymentPix:          "payment-pix",
	TopicPaymentCard:         "payment-card",
	TopicPaymentBoleto:       "payment-boleto",
	TopicPaymentCash:         "payment-cash",
	TopicPaymentInstallments: "payment-installments",
	TopicImplant:             "implant",
	TopicOrthodontics:        "orthodontics",
	TopicRootCanal:           "root-canal",
	TopicExtraction:          "extraction",
	TopicCleaning:            "cleaning",
	TopicEmergency:           "emergency",
	TopicWhitening:           "whitening",
	TopicVeneers:             "veneers",
	TopicHarmonization:       "facial-harmonization",
	TopicPrice:               "price",
	TopicAppointment:         "appointment",
	TopicLocation:            "location",
	TopicHours:               "opening-hours",
	TopicInsurance:           "insurance",
	TopicFear:                "fear",
}

var topicByKey = func() map[string]Topic {
	m := make(map[string]Topic, topicCount)
	for t := Topic(0); t < topicCount; t++ {
		m[topicKeys[t]] = t
	}
	return m
}()

// String returns the canonical key, e.g. "payment-pix".
func (t Topic) String() string {
	if t < 0 || t >= topicCount {
		return "unknown"
	}
	return topicKeys[t]
}

// ParseTopic maps a canonical key back to its Topic.
func ParseTopic(key string) (Topic, bool) {
	t, ok := topicByKey[key]
	if !ok || t == TopicUnknown {
		return TopicUnknown, false
	}
	return t, true
}

// AllTopics lists every known topic except TopicUnknown.
func AllTopics() []Topic {
	out := make([]Topic, 0, topicCount-1)
	for t := TopicUnknown + 1; t < topicCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t Topic) Category() Category {
	switch {
	case t >= TopicBereavement && t <= TopicNegativeRepeated:
		return CategoryDiscount
	case t >= TopicPaymentPix && t <= TopicPaymentInstallments:
		return CategoryPayment
	case t >= TopicImplant && t <= TopicEmergency:
		return CategoryService
	case t >= TopicWhitening && t <= TopicHarmonization:
		return CategoryAesthetic
	case t >= TopicPrice && t <= TopicFear:
		return CategoryInformation
	default:
		return CategoryConversational
	}
}

// IsProduct reports whether the topic is a treatment the clinic sells,
// which is what InterestedTopic tracks.
func (t Topic) IsProduct() bool {
	c := t.Category()
	return c == CategoryService || c == CategoryAesthetic
}
