package catalog

// Default returns the catalog of the clinic's front-desk assistant.
func Default() *Catalog {
	return New(defaultEntries(), defaultKeywords(), defaultPhrases(), defaultVocabulary())
}

func defaultEntries() map[Topic]Entry {
	return map[Topic]Entry{
		TopicGreeting: {
			Text: "Olá! Eu sou a assistente virtual da Clínica Sorriso Vivo. Posso te ajudar com tratamentos, valores ou agendamento. Como posso ajudar?",
		},
		TopicFallback: {
			Text: "Desculpe, não entendi muito bem. Você pode me contar qual tratamento procura ou se quer agendar uma avaliação?",
		},
		TopicInactivityNudge: {
			Text: "Ainda está por aí? Se tiver qualquer dúvida sobre tratamentos ou valores, é só me chamar.",
		},
		TopicGoodbye: {
			Text: "Como não tivemos resposta, vou encerrar nosso atendimento por aqui. Quando quiser, é só voltar. Até logo!",
		},
		TopicHello: {
			Text: "Olá! Que bom falar com você. Qual tratamento você está procurando?",
		},
		TopicThanks: {
			Text: "Eu que agradeço! Se precisar de mais alguma coisa, estou por aqui.",
		},
		TopicFarewell: {
			Text: "Até logo! Foi um prazer conversar com você.",
		},
		TopicPositive: {
			Text: "Que ótimo saber disso! Quer que eu já veja um horário para a sua avaliação?",
		},
		TopicWhyUs: {
			Text: "Somos uma clínica com mais de 15 anos de experiência, equipe especializada e equipamentos de última geração.",
			Alternates: []string{
				"Aqui cada paciente tem um plano de tratamento personalizado e acompanhamento do início ao fim.",
				"Nossos pacientes avaliam o atendimento com nota 4,9 e oferecemos garantia em todos os procedimentos estéticos.",
			},
		},
		TopicBereavement: {
			Text: "Sinto muito pela sua perda. Neste momento difícil queremos cuidar de você com carinho, e por isso liberei {desconto}% de desconto no seu tratamento.",
			Alternates: []string{
				"Meus sentimentos, de verdade. Seu desconto de {desconto}% continua garantido, e nossa equipe vai te atender com toda a calma.",
				"Estamos aqui com você. Lembre que seu desconto de {desconto}% segue valendo para quando se sentir pronto.",
			},
		},
		TopicSevereDistress: {
			Text: "Sinto muito que você esteja passando por isso. Você não está sozinho: se precisar conversar, o CVV atende de graça pelo 188, 24 horas. Aqui na clínica liberei {desconto}% de desconto para que o cuidado com você fique mais leve.",
			Alternates: []string{
				"Estou aqui com você. Lembre que o CVV atende pelo 188 a qualquer hora. Seu desconto de {desconto}% está garantido.",
				"Cuidar de você é o mais importante agora. Se precisar, ligue 188 (CVV). Seu desconto de {desconto}% continua reservado.",
			},
		},
		TopicPriceObjection: {
			Text: "Entendo, o investimento é importante. Para facilitar, consegui liberar {desconto}% de desconto para você fechar o tratamento!",
			Alternates: []string{
				"Compreendo! Lembre que você já tem {desconto}% de desconto garantido, e ainda dá para parcelar em até 12x.",
				"Sei como é. Com os {desconto}% de desconto que já liberei, as parcelas ficam bem mais em conta. Quer que eu simule?",
			},
		},
		TopicComparisonShopping: {
			Text: "Faz muito bem em pesquisar! Para você comparar com tranquilidade, liberei {desconto}% de desconto aqui com a gente.",
			Alternates: []string{
				"Pode comparar à vontade! Lembre que aqui você tem {desconto}% de desconto e garantia nos procedimentos.",
				"Ótimo pesquisar. Além dos {desconto}% de desconto, nossa avaliação inicial é feita por especialista.",
			},
		},
		TopicNegativeSentiment: {
			Text: "Poxa, sinto muito por isso. Quero muito que sua experiência seja boa, então liberei {desconto}% de desconto para você.",
			Alternates: []string{
				"Sinto muito mesmo. Seu desconto de {desconto}% continua valendo e estou aqui para resolver o que precisar.",
				"Entendo sua frustração. Vamos resolver juntos, e seus {desconto}% de desconto seguem garantidos.",
			},
		},
		TopicNegativeRepeated: {
			Text: "Percebo que as coisas não estão boas e quero fazer diferente: seu desconto agora é de {desconto}%, o maior que posso oferecer.",
			Alternates: []string{
				"Sinto muito de novo. Você já está com {desconto}% de desconto, o máximo disponível, e posso chamar nossa coordenadora para te atender.",
				"Quero te ajudar de verdade. Seu desconto de {desconto}% é o maior que temos, e posso priorizar seu agendamento.",
			},
		},
		TopicPaymentPix: {
			Text: "Aceitamos Pix! O pagamento à vista no Pix é confirmado na hora.",
		},
		TopicPaymentCard: {
			Text: "Aceitamos cartões de crédito e débito das principais bandeiras.",
		},
		TopicPaymentBoleto: {
			Text: "Trabalhamos com boleto bancário, com vencimento em até 3 dias úteis.",
		},
		TopicPaymentCash: {
			Text: "Pode pagar em dinheiro diretamente na recepção da clínica.",
		},
		TopicPaymentInstallments: {
			Text: "Você pode parcelar em até 12x no cartão de crédito, sem precisar de entrada.",
		},
		TopicImplant: {
			Text: "Fazemos implantes dentários com planejamento digital e pinos de titânio de alta durabilidade. A avaliação define o melhor caso para você.",
		},
		TopicOrthodontics: {
			Text: "Temos aparelhos fixos, estéticos e alinhadores invisíveis. Na avaliação o ortodontista indica o melhor para o seu sorriso.",
		},
		TopicRootCanal: {
			Text: "Fazemos tratamento de canal com anestesia e equipamento rotatório, geralmente em uma ou duas sessões.",
		},
		TopicExtraction: {
			Text: "Realizamos extrações simples e de siso com todo o cuidado e anestesia local.",
		},
		TopicCleaning: {
			Text: "A limpeza (profilaxia) remove tártaro e placa e é recomendada a cada 6 meses.",
		},
		TopicEmergency: {
			Text: "Sinto muito pela dor! Temos horários de encaixe para urgência ainda hoje. Quer que eu reserve um para você?",
		},
		TopicWhitening: {
			Text: "Temos clareamento a laser no consultório e clareamento caseiro com moldeira. Os dois são seguros e acompanhados pelo dentista.",
		},
		TopicVeneers: {
			Text: "As lentes de contato dental e facetas corrigem cor e formato dos dentes com resultado natural.",
		},
		TopicHarmonization: {
			Text: "Oferecemos harmonização facial, com toxina botulínica e preenchimento feitos por especialista.",
		},
		TopicPrice: {
			Text: "Os valores dependem do tratamento indicado. A avaliação inicial é gratuita e lá você recebe o orçamento completo.",
		},
		TopicAppointment: {
			Text: "Vamos agendar! Temos horários de segunda a sábado. Qual período fica melhor para você, manhã ou tarde?",
		},
		TopicLocation: {
			Text: "Estamos na Rua das Flores, 120, no centro, pertinho da estação do metrô.",
		},
		TopicHours: {
			Text: "Funcionamos de segunda a sexta das 8h às 20h e aos sábados das 8h às 13h.",
		},
		TopicInsurance: {
			Text: "Atendemos os principais convênios odontológicos. Me conta qual é o seu que eu confirmo a cobertura.",
		},
		TopicFear: {
			Text: "É super normal sentir medo de dentista. Nosso atendimento é humanizado, no seu tempo, e usamos anestesia sem dor.",
		},
	}
}

// Table order matters: the first keyword contained in the utterance wins.
func defaultKeywords() []Association {
	return []Association{
		{Term: "clareamento", Topic: TopicWhitening},
		{Term: "clarear", Topic: TopicWhitening},
		{Term: "branqueamento", Topic: TopicWhitening},
		{Term: "implante", Topic: TopicImplant},
		{Term: "prótese", Topic: TopicImplant},
		{Term: "aparelho", Topic: TopicOrthodontics},
		{Term: "ortodont", Topic: TopicOrthodontics},
		{Term: "alinhador", Topic: TopicOrthodontics},
		{Term: "canal", Topic: TopicRootCanal},
		{Term: "extração", Topic: TopicExtraction},
		{Term: "extrair", Topic: TopicExtraction},
		{Term: "siso", Topic: TopicExtraction},
		{Term: "limpeza", Topic: TopicCleaning},
		{Term: "tártaro", Topic: TopicCleaning},
		{Term: "lente", Topic: TopicVeneers},
		{Term: "faceta", Topic: TopicVeneers},
		{Term: "harmonização", Topic: TopicHarmonization},
		{Term: "botox", Topic: TopicHarmonization},
		{Term: "preenchimento", Topic: TopicHarmonization},
		{Term: "urgência", Topic: TopicEmergency},
		{Term: "emergência", Topic: TopicEmergency},
		{Term: "dor", Topic: TopicEmergency},
		{Term: "convênio", Topic: TopicInsurance},
		{Term: "plano", Topic: TopicInsurance},
		{Term: "preço", Topic: TopicPrice},
		{Term: "valor", Topic: TopicPrice},
		{Term: "quanto custa", Topic: TopicPrice},
		{Term: "orçamento", Topic: TopicPrice},
		{Term: "funcionamento", Topic: TopicHours},
		{Term: "que horas", Topic: TopicHours},
		{Term: "sábado", Topic: TopicHours},
		{Term: "agendar", Topic: TopicAppointment},
		{Term: "marcar", Topic: TopicAppointment},
		{Term: "consulta", Topic: TopicAppointment},
		{Term: "avaliação", Topic: TopicAppointment},
		{Term: "horário", Topic: TopicAppointment},
		{Term: "endereço", Topic: TopicLocation},
		{Term: "onde fica", Topic: TopicLocation},
		{Term: "como chegar", Topic: TopicLocation},
		{Term: "medo", Topic: TopicFear},
		{Term: "trauma", Topic: TopicFear},
		{Term: "pavor", Topic: TopicFear},
		{Term: "obrigad", Topic: TopicThanks},
		{Term: "valeu", Topic: TopicThanks},
		{Term: "tchau", Topic: TopicFarewell},
		{Term: "até logo", Topic: TopicFarewell},
		{Term: "olá", Topic: TopicHello},
		{Term: "bom dia", Topic: TopicHello},
		{Term: "boa tarde", Topic: TopicHello},
		{Term: "boa noite", Topic: TopicHello},
	}
}

func defaultPhrases() []Association {
	return []Association{
		{Term: "quero clarear meus dentes", Topic: TopicWhitening},
		{Term: "dentes mais brancos", Topic: TopicWhitening},
		{Term: "dentes amarelados", Topic: TopicWhitening},
		{Term: "quero colocar implante", Topic: TopicImplant},
		{Term: "perdi um dente", Topic: TopicImplant},
		{Term: "dentes tortos", Topic: TopicOrthodontics},
		{Term: "quero usar aparelho", Topic: TopicOrthodontics},
		{Term: "quero tirar o siso", Topic: TopicExtraction},
		{Term: "lentes de contato dental", Topic: TopicVeneers},
		{Term: "quero fazer botox", Topic: TopicHarmonization},
		{Term: "dor de dente", Topic: TopicEmergency},
		{Term: "quanto custa uma consulta", Topic: TopicPrice},
		{Term: "quero marcar uma avaliação", Topic: TopicAppointment},
	}
}

func defaultVocabulary() Vocabulary {
	return Vocabulary{
		LossTerms: []string{
			"perdi", "faleceu", "falecimento", "faleceram", "morreu", "morte", "luto", "velório", "enterro",
		},
		FamilyTerms: []string{
			"mãe", "pai", "filho", "filha", "irmão", "irmã", "avó", "avô", "esposa", "esposo", "marido",
			"família", "tio", "tia", "sogr",
		},
		DistressTerms: []string{
			"sem esperança", "desesperad", "não aguento mais", "quero morrer", "sem saída", "depressão",
			"deprimid", "vontade de sumir", "não vejo sentido",
		},
		FirstPersonTerms: []string{
			"eu", "estou", "me sinto", "minha", "meu", "comigo", "tô",
		},
		PriceObjection: []string{
			"caro", "salgado", "puxado", "fora do meu orçamento", "fora do orçamento",
			"não tenho condições", "não tenho condição", "não tenho dinheiro",
		},
		Comparison: []string{
			"outra clínica", "outras clínicas", "outro dentista", "comparando", "pesquisando preço",
			"mais barato", "mais em conta", "concorrente",
		},
		Positive: []string{
			"ótimo", "gostei", "perfeito", "maravilh", "excelente", "adorei", "amei", "show", "que bom", "legal",
		},
		Negative: []string{
			"ruim", "péssimo", "horrível", "odiei", "odeio", "detestei", "decepcion", "chatead",
			"insatisfeit", "triste", "não gostei",
		},
		WhyUs: []string{
			"por que escolher", "porque escolher", "por que vocês", "porque vocês", "diferencial",
			"vale a pena", "melhor clínica", "posso confiar",
		},
		PaymentMethods: []PaymentMethod{
			{Term: "parcel", Method: "parcelado", Topic: TopicPaymentInstallments},
			{Term: "pix", Method: "pix", Topic: TopicPaymentPix},
			{Term: "boleto", Method: "boleto", Topic: TopicPaymentBoleto},
			{Term: "cartão", Method: "cartão", Topic: TopicPaymentCard},
			{Term: "crédito", Method: "cartão", Topic: TopicPaymentCard},
			{Term: "débito", Method: "cartão", Topic: TopicPaymentCard},
			{Term: "dinheiro", Method: "dinheiro", Topic: TopicPaymentCash},
		},
		PriceTerms: []string{
			"preço", "valor", "custa", "caro", "barato", "desconto", "orçamento", "pagamento", "parcel",
		},
		FearTerms: []string{
			"medo", "trauma", "pavor", "ansios", "nervos", "fobia",
		},
		SchedulingTerms: []string{
			"agendar", "marcar", "horário", "agenda", "disponível", "consulta", "avaliação",
		},
	}
}
