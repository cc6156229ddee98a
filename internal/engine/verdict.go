package engine

// Category names the rule that authorized a comment.
type Category string

const (
	CategoryDoc            Category = "doc"
	CategoryMarker         Category = "marker"
	CategorySuppression    Category = "suppression"
	CategoryLicenseBanner  Category = "license-banner"
	CategoryInlineDisabled Category = "inline-disabled"
)

// Verdict is the outcome of classifying one comment: authorized with a
// reason, or flagged.
type Verdict struct {
	Authorized bool
	Category   Category
}

// Flagged is the verdict for a comment no rule authorized.
var Flagged = Verdict{}

// Allowed returns an authorized verdict with the given reason.
func Allowed(c Category) Verdict {
	return Verdict{Authorized: true, Category: c}
}

func (v Verdict) String() string {
	if !v.Authorized {
		return "flagged"
	}
	return "allowed(" + string(v.Category) + ")"
}
