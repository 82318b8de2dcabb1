package license

// Level grades how the presentation layer should surface a recommendation.
type Level string

// Recommendation levels.
const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Recommendation explains why a license was selected.
type Recommendation struct {
	Level  Level
	Reason string
}

// rule is one step of the selection chain.
type rule struct {
	matches        func(wantsCopyleft, wantsPatentClause bool) bool
	id             ID
	recommendation Recommendation
}

// rules is evaluated top-down and the first match wins. Copyleft dominates
// the patent clause: a user asking for both gets GPL-3.0.
var rules = []rule{
	{
		matches: func(copyleft, _ bool) bool { return copyleft },
		id:      GPL30,
		recommendation: Recommendation{
			Level:  LevelWarning,
			Reason: "You want to force 'Share Alike' behavior (Copyleft).",
		},
	},
	{
		matches: func(_, patent bool) bool { return patent },
		id:      Apache20,
		recommendation: Recommendation{
			Level:  LevelInfo,
			Reason: "You need patent protection but want to allow closed-source use.",
		},
	},
}

var fallbackRule = rule{
	id: MIT,
	recommendation: Recommendation{
		Level:  LevelSuccess,
		Reason: "You want the simplest, most permissive option.",
	},
}

func match(wantsCopyleft, wantsPatentClause bool) rule {
	for _, r := range rules {
		if r.matches(wantsCopyleft, wantsPatentClause) {
			return r
		}
	}
	return fallbackRule
}

// Select maps the two preferences to a license identifier.
func Select(wantsCopyleft, wantsPatentClause bool) ID {
	return match(wantsCopyleft, wantsPatentClause).id
}

// Recommend returns the selected identifier along with the reason for it.
func Recommend(wantsCopyleft, wantsPatentClause bool) (ID, Recommendation) {
	r := match(wantsCopyleft, wantsPatentClause)
	return r.id, r.recommendation
}
