package report

// textTemplate is the fixed report layout. Placeholders are brace-delimited
// field names; everything else is literal and must survive rendering
// byte-for-byte.
const textTemplate = `Project Cost Estimation Report
==============================
Category: Semi-Detached Software Project
Efforts Adjustment Factor (EAF): {eaf}

Lines of Code (LOC): {loc}
KLOC: {kloc}

COCOMO Calculations:
- Effort (E): {effort} Person-Months
- Time (T): {time} Months
- People (P): {people} Persons

Cost Estimation:
1. Developer Cost: Rs. {developer_cost}
2. Final System Cost: Rs. {final_system_cost}
3. Paid Software Cost: Rs. {paid_sw_cost}
4. Miscellaneous Cost: Rs. {misc_cost}
5. Total Cost: Rs. {total_cost}
==============================
`

const (
	FieldEAF             = "eaf"
	FieldLoc             = "loc"
	FieldKloc            = "kloc"
	FieldEffort          = "effort"
	FieldTime            = "time"
	FieldPeople          = "people"
	FieldDeveloperCost   = "developer_cost"
	FieldFinalSystemCost = "final_system_cost"
	FieldPaidSWCost      = "paid_sw_cost"
	FieldMiscCost        = "misc_cost"
	FieldTotalCost       = "total_cost"
)

// Fields lists every placeholder the template contains, in template order.
var Fields = []string{
	FieldEAF,
	FieldLoc,
	FieldKloc,
	FieldEffort,
	FieldTime,
	FieldPeople,
	FieldDeveloperCost,
	FieldFinalSystemCost,
	FieldPaidSWCost,
	FieldMiscCost,
	FieldTotalCost,
}
