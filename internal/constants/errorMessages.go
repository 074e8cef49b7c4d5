package constants

// User-facing messages returned by the login flow. These are part of the
// wire contract with the web client and must not be reworded casually.
const (
	MsgUserNotFound        = "Usuário não encontrado"
	MsgNoActiveMemberships = "Você não possui vínculos ativos em nenhuma academia"
	MsgCheckinFetchFailed  = "Erro ao buscar check-ins"
)

const (
	// MsgAdvisorFallback is returned whenever the generative collaborator
	// fails or is unreachable. The login flow never depends on it.
	MsgAdvisorFallback = "Não consegui gerar uma dica agora. Mantenha o plano da semana e, em caso de dúvida, fale com seu treinador."
)
