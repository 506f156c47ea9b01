package suggestions

import "clinic-engagement-engine/pkg/models"

// Bucket names
const (
	BucketInitial     = "initial"
	BucketServices    = "services"
	BucketAesthetics  = "aesthetics"
	BucketPricing     = "pricing"
	BucketFear        = "fear"
	BucketAppointment = "appointment"
)

// Intents shared by base and custom suggestions
const (
	IntentServices        = "services"
	IntentConsultPrice    = "consult-price"
	IntentBookEvaluation  = "book-evaluation"
	IntentLocation        = "location"
	IntentDuration        = "treatment-duration"
	IntentPain            = "pain"
	IntentPaymentMethods  = "payment-methods"
	IntentWhiteningPrice  = "whitening-price"
	IntentDurability      = "durability"
	IntentVeneers         = "veneers"
	IntentInstallments    = "payment-installments"
	IntentPix             = "payment-pix"
	IntentHumanized       = "humanized-care"
	IntentAnesthesia      = "anesthesia"
	IntentCompanion       = "companion"
	IntentAvailability    = "availability"
	IntentSaturday        = "saturday"
	IntentWhiteningSafety = "whitening-sensitivity"
)

// Buckets maps bucket names to their base suggestions.
type Buckets map[string][]models.Suggestion

func DefaultBuckets() Buckets {
	return Buckets{
		BucketInitial: {
			{Text: "Quais tratamentos vocês oferecem?", Intent: IntentServices},
			{Text: "Quanto custa uma consulta?", Intent: IntentConsultPrice},
			{Text: "Quero agendar uma avaliação", Intent: IntentBookEvaluation},
			{Text: "Onde fica a clínica?", Intent: IntentLocation},
		},
		BucketServices: {
			{Text: "Quanto tempo dura o tratamento?", Intent: IntentDuration},
			{Text: "O procedimento dói?", Intent: IntentPain},
			{Text: "Quais as formas de pagamento?", Intent: IntentPaymentMethods},
			{Text: "Quero agendar uma avaliação", Intent: IntentBookEvaluation},
		},
		BucketAesthetics: {
			{Text: "Quanto custa o clareamento?", Intent: IntentWhiteningPrice},
			{Text: "O resultado é duradouro?", Intent: IntentDurability},
			{Text: "Vocês fazem lente de contato dental?", Intent: IntentVeneers},
			{Text: "Quais as formas de pagamento?", Intent: IntentPaymentMethods},
		},
		BucketPricing: {
			{Text: "Quais as formas de pagamento?", Intent: IntentPaymentMethods},
			{Text: "Posso parcelar?", Intent: IntentInstallments},
			{Text: "Vocês aceitam pix?", Intent: IntentPix},
			{Text: "Quero agendar uma avaliação", Intent: IntentBookEvaluation},
		},
		BucketFear: {
			{Text: "O atendimento é humanizado?", Intent: IntentHumanized},
			{Text: "Vocês usam anestesia?", Intent: IntentAnesthesia},
			{Text: "Posso ir acompanhado?", Intent: IntentCompanion},
			{Text: "Quero agendar uma avaliação", Intent: IntentBookEvaluation},
		},
		BucketAppointment: {
			{Text: "Quais horários estão disponíveis?", Intent: IntentAvailability},
			{Text: "Vocês atendem aos sábados?", Intent: IntentSaturday},
			{Text: "Onde fica a clínica?", Intent: IntentLocation},
			{Text: "Quanto custa uma consulta?", Intent: IntentConsultPrice},
		},
	}
}
