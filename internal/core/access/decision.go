// Package access holds the portal's route access decisions: the admin and
// workspace gates plus the landing router. Everything here is a pure function
// of a resolved identity snapshot so the decision table is directly testable;
// HTTP wiring lives in the middleware package.
package access

// Effect is the outcome class of a gate or landing evaluation.
type Effect string

const (
	// EffectPending means the identity is still loading and nothing can be
	// decided yet. Callers render a neutral loading state, never a redirect.
	EffectPending Effect = "PENDING"
	// EffectAllow renders the protected content.
	EffectAllow Effect = "ALLOW"
	// EffectRedirect steers the user to Target without surfacing an error.
	EffectRedirect Effect = "REDIRECT"
	// EffectDeny is a terminal state with a static, user-visible message and
	// no navigation.
	EffectDeny Effect = "DENY"
)

// Decision is the result of evaluating a gate or the landing router against an
// identity snapshot.
type Decision struct {
	Effect Effect `json:"effect"`
	// Target is the destination route for EffectRedirect (and for the landing
	// router's EffectAllow, where it names the screen to land on).
	Target string `json:"target,omitempty"`
	// Reason is the static message for EffectDeny.
	Reason string `json:"reason,omitempty"`
}

// Static deny messages. These are terminal states: the user stays put and is
// told to contact an administrator.
const (
	ReasonAccessDenied  = "You do not have access to this area. Contact your administrator."
	ReasonNoWorkspace   = "No workspace has been assigned to your account yet. Contact your administrator."
	ReasonAwaitingRoles = "Your account is awaiting role assignment. Contact your administrator."
)

func pending() Decision  { return Decision{Effect: EffectPending} }
func allow() Decision    { return Decision{Effect: EffectAllow} }
func deny(reason string) Decision { return Decision{Effect: EffectDeny, Reason: reason} }

func redirect(target string) Decision {
	return Decision{Effect: EffectRedirect, Target: target}
}
