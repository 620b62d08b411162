package domain

// ActionType identifies one of the seven legal turn declarations.
type ActionType string

const (
	ActionIncome      ActionType = "income"
	ActionForeignAid  ActionType = "foreign_aid"
	ActionTax         ActionType = "tax"
	ActionCoup        ActionType = "coup"
	ActionAssassinate ActionType = "assassinate"
	ActionSteal       ActionType = "steal"
	ActionExchange    ActionType = "exchange"
)

// ActionSpec is the static rule metadata for one action kind.
type ActionSpec struct {
	Cost        int
	NeedsTarget bool
	// ClaimedCard is the role the actor asserts; zero for unchallengeable
	// actions.
	ClaimedCard Card
	// BlockableBy lists the roles a counter-claim may use; empty means the
	// action cannot be blocked.
	BlockableBy []Card
}

// Challengeable reports whether declaring the action asserts a role claim.
func (s ActionSpec) Challengeable() bool { return s.ClaimedCard != "" }

// Blockable reports whether any role can block the action.
func (s ActionSpec) Blockable() bool { return len(s.BlockableBy) > 0 }

var actionCatalog = map[ActionType]ActionSpec{
	ActionIncome:      {},
	ActionForeignAid:  {BlockableBy: []Card{CardDuke}},
	ActionTax:         {ClaimedCard: CardDuke},
	ActionCoup:        {Cost: CoupCost, NeedsTarget: true},
	ActionAssassinate: {Cost: AssassinateCost, NeedsTarget: true, ClaimedCard: CardAssassin, BlockableBy: []Card{CardContessa}},
	ActionSteal:       {NeedsTarget: true, ClaimedCard: CardCaptain, BlockableBy: []Card{CardCaptain, CardAmbassador}},
	ActionExchange:    {ClaimedCard: CardAmbassador},
}

// LookupAction returns the catalog entry for t.
func LookupAction(t ActionType) (ActionSpec, bool) {
	spec, ok := actionCatalog[t]
	return spec, ok
}
