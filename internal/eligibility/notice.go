package eligibility

// Notice is the title and message shown to the applicant.
type Notice struct {
	Title   string
	Message string
}

const (
	titleApproved = "Parabéns!"
	titleRejected = "Desculpe"

	messageApproved = "Você está qualificado para o benefício extra do seu Plano de Saúde!"
)

var rejectionMessages = map[RejectionReason]string{
	ReasonAgeOutOfRange:           "Você não pode receber o benefício porque sua idade está fora dos critérios.",
	ReasonPlanNotEligible:         "Você não pode receber o benefício porque seu tipo de plano ainda não atende os requisitos.",
	ReasonWaitingPeriodIncomplete: "Você não pode receber o benefício porque ainda não concluiu o período de carência.",
	ReasonHasChronicConditions:    "Você não pode receber o benefício porque possui doenças crônicas cadastradas.",
	ReasonTooManyDependents:       "Você não pode receber o benefício porque possui mais de 3 dependentes.",
	ReasonNoRecentCheckup:         "Você não pode receber o benefício porque não teve consultas liberadas nos últimos 6 meses.",
	ReasonHasOverdueInvoice:       "Você não pode receber o benefício porque possui faturas em atraso.",
	ReasonRegionNotCovered:        "Você não pode receber o benefício porque seu estado não está na área de cobertura.",
}

// NoticeFor renders a verdict as the fixed pt-BR notice.
func NoticeFor(v Verdict) Notice {
	if v.IsApproved() {
		return Notice{Title: titleApproved, Message: messageApproved}
	}
	return Notice{Title: titleRejected, Message: rejectionMessages[v.Reason]}
}

// Message returns the rejection message for a reason, or "" when unknown.
func (r RejectionReason) Message() string {
	return rejectionMessages[r]
}
