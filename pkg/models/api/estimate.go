package api

type EstimateRequest struct {
	RepoURL           string   `json:"repo_url"`
	Token             string   `json:"token"`
	IncludeTests      *bool    `json:"include_tests,omitempty"`
	MaxFileSizeMB     float64  `json:"max_file_size_mb,omitempty"`
	ExcludeExtensions []string `json:"exclude_extensions,omitempty"`

	Category         string  `json:"category,omitempty"`
	EAF              float64 `json:"eaf,omitempty"`
	AvgSalary        float64 `json:"avg_salary"`
	TeamSize         int     `json:"team_size"`
	AdditionalHWCost float64 `json:"additional_hw_cost,omitempty"`
}

type Estimate struct {
	Category        string  `json:"category"`
	EAF             float64 `json:"eaf"`
	Loc             int     `json:"loc"`
	Kloc            float64 `json:"kloc"`
	Effort          float64 `json:"effort"`
	Time            float64 `json:"time"`
	People          float64 `json:"people"`
	DeveloperCost   float64 `json:"developer_cost"`
	FinalSystemCost float64 `json:"final_system_cost"`
	PaidSWCost      float64 `json:"paid_sw_cost"`
	MiscCost        float64 `json:"misc_cost"`
	TotalCost       float64 `json:"total_cost"`
}

type LocBreakdown struct {
	Total       int            `json:"total"`
	ByExtension map[string]int `json:"by_extension"`
}

type EstimateResponse struct {
	Estimate Estimate     `json:"estimate"`
	Loc      LocBreakdown `json:"loc"`
}

type Category struct {
	Name string `json:"name"`
}
