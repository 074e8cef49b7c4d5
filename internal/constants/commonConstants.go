package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAdvisorTip CachePrefix = "TIP_"
)

// MembershipStatusActive is the only membership status eligible for login.
// Any other value (inativo, suspenso, pendente) keeps the member out.
const MembershipStatusActive = "ativo"
