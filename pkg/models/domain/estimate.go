package domain

// ProjectCategory identifies a COCOMO project class
type ProjectCategory string

const (
	CategoryOrganic      ProjectCategory = "organic"
	CategorySemiDetached ProjectCategory = "semi-detached"
	CategoryEmbedded     ProjectCategory = "embedded"
)

// CocomoFactors holds the basic COCOMO coefficients for a project category
type CocomoFactors struct {
	A float64 // effort coefficient
	B float64 // effort exponent
	C float64 // schedule coefficient
	D float64 // schedule exponent
}

// EstimateParams are the inputs to a single cost estimation run
type EstimateParams struct {
	Loc              int
	EAF              float64 // effort adjustment factor
	AvgSalary        float64 // monthly, per developer
	TeamSize         int
	AdditionalHWCost float64
	MachineCost      float64 // per team member
	MiscCost         float64
	PaidSWCost       float64
}

// Estimate is a completed COCOMO estimation
type Estimate struct {
	Category        ProjectCategory
	Loc             int
	Kloc            float64
	EAF             float64
	Effort          float64 // person-months
	Time            float64 // months
	People          float64 // effort / time
	DeveloperCost   float64
	SystemCost      float64 // machine cost before discount
	FinalSystemCost float64
	PaidSWCost      float64
	MiscCost        float64
	TotalCost       float64
}
