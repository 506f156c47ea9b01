package classifier

// Rule is one classification rule. The declaration order is the
// precedence order: the first rule that matches wins.
type Rule int

const (
	RuleBereavement Rule = iota + 1
	RuleSevereDistress
	RulePriceObjection
	RuleComparisonShopping
	RulePaymentMethod
	RulePersistedNegative
	RuleExactPhrase
	RuleSentiment
	RuleWhyUs
	RuleKeyword
	RuleFallback
)

// Precedence lists every rule in evaluation order.
var Precedence = []Rule{
	RuleBereavement,
	RuleSevereDistress,
	RulePriceObjection,
	RuleComparisonShopping,
	RulePaymentMethod,
	RulePersistedNegative,
	RuleExactPhrase,
	RuleSentiment,
	RuleWhyUs,
	RuleKeyword,
	RuleFallback,
}

var ruleNames = map[Rule]string{
	RuleBereavement:        "bereavement",
	RuleSevereDistress:     "severe_distress",
	RulePriceObjection:     "price_objection",
	RuleComparisonShopping: "comparison_shopping",
	RulePaymentMethod:      "payment_method",
	RulePersistedNegative:  "persisted_negative",
	RuleExactPhrase:        "exact_phrase",
	RuleSentiment:          "sentiment",
	RuleWhyUs:              "why_us",
	RuleKeyword:            "keyword",
	RuleFallback:           "fallback",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "unknown"
}
